package handlers

import (
	"errors"
	"io"
	"net/http"

	"marketplace/internal/domain/entities"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端接口：商家审核、封禁与统计
type AdminHandler struct {
	vendorService  *services.VendorService
	productService *services.ProductService
	adminService   *services.AdminService
}

// NewAdminHandler 创建管理端处理器
func NewAdminHandler(
	vendorService *services.VendorService,
	productService *services.ProductService,
	adminService *services.AdminService,
) *AdminHandler {
	return &AdminHandler{
		vendorService:  vendorService,
		productService: productService,
		adminService:   adminService,
	}
}

// Dashboard 首页统计
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.DashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListVendors 商家列表，支持按审核状态、封禁状态和店名过滤
func (h *AdminHandler) ListVendors(c *gin.Context) {
	filter := entities.VendorFilter{
		Status: entities.ApprovalStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if blocked := c.Query("blocked"); blocked != "" {
		b := blocked == "true"
		filter.Blocked = &b
	}

	vendors, err := h.vendorService.FindAll(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vendors})
}

// FindVendor 商家详情
func (h *AdminHandler) FindVendor(c *gin.Context) {
	vendor, err := h.vendorService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// review 从请求中取出管理员身份与原因
func review(c *gin.Context) (adminID, reason string, ok bool) {
	adminID, ok = currentUserID(c)
	if !ok {
		return "", "", false
	}

	// 原因可以不带请求体
	var dto entities.ReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}

	return adminID, dto.Reason, true
}

// ApproveVendor 审核通过商家
func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.Approve(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// RejectVendor 驳回商家，原因必填
func (h *AdminHandler) RejectVendor(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.Reject(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// BlockVendor 封禁商家并连带封禁其全部商品
func (h *AdminHandler) BlockVendor(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.Block(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UnblockVendor 解封商家，商品的封禁状态不随之恢复
func (h *AdminHandler) UnblockVendor(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.Unblock(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// VendorLogs 商家的审核与封禁日志
func (h *AdminHandler) VendorLogs(c *gin.Context) {
	logs, err := h.vendorService.Logs(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// ListProducts 管理端商品列表
func (h *AdminHandler) ListProducts(c *gin.Context) {
	filter := entities.ProductFilter{
		Search:   c.Query("search"),
		VendorID: c.Query("vendor_id"),
	}
	if blocked := c.Query("blocked"); blocked != "" {
		b := blocked == "true"
		filter.Blocked = &b
	}

	products, err := h.productService.ListAll(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// FindProduct 管理端商品详情
func (h *AdminHandler) FindProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// BlockProduct 封禁单个商品，原因必填
func (h *AdminHandler) BlockProduct(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	product, err := h.productService.Block(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UnblockProduct 解封单个商品
func (h *AdminHandler) UnblockProduct(c *gin.Context) {
	adminID, reason, ok := review(c)
	if !ok {
		return
	}

	product, err := h.productService.Unblock(c.Param("id"), adminID, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ProductLogs 商品的封禁日志
func (h *AdminHandler) ProductLogs(c *gin.Context) {
	logs, err := h.productService.Logs(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}
