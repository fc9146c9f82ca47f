package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"marketplace/internal/domain/entities"
	"marketplace/internal/services"
	"marketplace/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler 商家侧接口：店铺状态与商品管理
type VendorHandler struct {
	vendorService  *services.VendorService
	productService *services.ProductService
	objectStorage  *storage.ObjectStorage
}

// NewVendorHandler 创建商家处理器，objectStorage可为nil
func NewVendorHandler(
	vendorService *services.VendorService,
	productService *services.ProductService,
	objectStorage *storage.ObjectStorage,
) *VendorHandler {
	return &VendorHandler{
		vendorService:  vendorService,
		productService: productService,
		objectStorage:  objectStorage,
	}
}

// Dashboard 商家店铺状态：审核状态、拒绝原因、封禁信息
func (h *VendorHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.FindByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UploadIDProof 上传身份证明文件
func (h *VendorHandler) UploadIDProof(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if h.objectStorage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "对象存储未启用"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未提供文件"})
		return
	}

	vendor, err := h.vendorService.FindByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	objectKey := fmt.Sprintf("vendors/%s/idproof/%s%s", vendor.ID, uuid.New(), filepath.Ext(file.Filename))
	if err := h.objectStorage.UploadFile(file, objectKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.vendorService.SetIDProof(userID, objectKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CreateProduct 创建商品
func (h *VendorHandler) CreateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.CreateProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Create(userID, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts 本店商品列表
func (h *VendorHandler) ListProducts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	products, err := h.productService.ListOwn(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// FindProduct 查看本店商品
func (h *VendorHandler) FindProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetOwn(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct 更新本店商品
func (h *VendorHandler) UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var dto entities.UpdateProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Update(userID, c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct 删除本店商品
func (h *VendorHandler) DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadProductImage 上传商品图片
func (h *VendorHandler) UploadProductImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if h.objectStorage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "对象存储未启用"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未提供文件"})
		return
	}

	productID := c.Param("id")
	objectKey := fmt.Sprintf("products/%s/%s%s", productID, uuid.New(), filepath.Ext(file.Filename))
	if err := h.objectStorage.UploadFile(file, objectKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.AttachImage(userID, productID, objectKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
