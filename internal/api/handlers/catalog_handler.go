package handlers

import (
	"net/http"

	"marketplace/internal/services"
	"marketplace/internal/storage"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 买家侧商品浏览接口
type CatalogHandler struct {
	productService *services.ProductService
	objectStorage  *storage.ObjectStorage
}

// NewCatalogHandler 创建商品浏览处理器，objectStorage可为nil
func NewCatalogHandler(productService *services.ProductService, objectStorage *storage.ObjectStorage) *CatalogHandler {
	return &CatalogHandler{
		productService: productService,
		objectStorage:  objectStorage,
	}
}

// List 可购买商品列表，支持按名称搜索
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.productService.ListVisible(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// FindOne 商品详情，不可购买的商品按不存在处理
func (h *CatalogHandler) FindOne(c *gin.Context) {
	product, err := h.productService.GetVisible(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ImageURL 商品图片的临时访问地址
func (h *CatalogHandler) ImageURL(c *gin.Context) {
	if h.objectStorage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "对象存储未启用"})
		return
	}

	product, err := h.productService.GetVisible(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if product.ImageKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "商品没有图片"})
		return
	}

	url, err := h.objectStorage.GetFileURL(product.ImageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
