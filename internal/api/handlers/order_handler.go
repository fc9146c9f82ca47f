package handlers

import (
	"net/http"

	"marketplace/internal/domain/entities"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler 结算与订单接口
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout 结算页数据
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.orderService.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ProcessPayment 支付落单
func (h *OrderHandler) ProcessPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.ProcessPaymentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.orderService.ProcessPayment(c.Request.Context(), userID, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// MyOrders 我的订单列表
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.MyOrders(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// OrderItems 订单行项，只能查看自己的订单
func (h *OrderHandler) OrderItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID := c.Param("id")

	orders, err := h.orderService.MyOrders(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	owned := false
	for _, o := range orders {
		if o.ID.String() == orderID {
			owned = true
			break
		}
	}
	if !owned {
		c.JSON(http.StatusNotFound, gin.H{"error": "订单不存在"})
		return
	}

	items, err := h.orderService.OrderItems(orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
