package handlers

import (
	"net/http"

	"marketplace/internal/domain/entities"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// CartHandler 购物车接口
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// View 购物车视图
func (h *CartHandler) View(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.cartService.View(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddItem 加入购物车
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.AddCartItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), userID, dto); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.cartService.View(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateItem 修改购物车中某商品数量
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.UpdateCartItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartService.UpdateItem(c.Request.Context(), userID, c.Param("productId"), dto.Quantity); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.cartService.View(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RemoveItem 从购物车移除商品
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
