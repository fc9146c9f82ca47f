package handlers

import (
	"net/http"

	"marketplace/internal/domain/entities"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// AddressHandler 收货地址接口
type AddressHandler struct {
	addressService *services.AddressService
}

// NewAddressHandler 创建收货地址处理器
func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// Create 新增收货地址
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.CreateAddressDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.addressService.Create(userID, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

// List 地址列表
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	addresses, err := h.addressService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": addresses})
}

// Delete 删除地址
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
