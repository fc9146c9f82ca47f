package handlers

import (
	"errors"
	"net/http"

	"marketplace/internal/domain/repositories"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为HTTP响应
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrVendorBlocked),
		errors.Is(err, services.ErrVendorNotApproved),
		errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrVendorNotPending),
		errors.Is(err, services.ErrReasonRequired),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrPaymentModeRequired),
		errors.Is(err, services.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUserID 取出认证中间件写入的用户ID
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未提供认证信息"})
		return "", false
	}
	return userID.(string), true
}
