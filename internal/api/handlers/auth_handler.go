package handlers

import (
	"net/http"

	"marketplace/internal/auth"
	"marketplace/internal/domain/entities"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler 处理认证相关的API请求
type AuthHandler struct {
	authService   *auth.JWTService
	userService   *services.UserService
	vendorService *services.VendorService
}

// NewAuthHandler 创建新的认证处理器
func NewAuthHandler(authService *auth.JWTService, userService *services.UserService, vendorService *services.VendorService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		userService:   userService,
		vendorService: vendorService,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	User         entities.User `json:"user"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User         entities.User `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
}

// VendorRegisterResponse 商家注册响应
type VendorRegisterResponse struct {
	User         entities.User          `json:"user"`
	Vendor       entities.VendorProfile `json:"vendor"`
	Token        string                 `json:"token"`
	RefreshToken string                 `json:"refresh_token"`
}

// Register 买家注册
func (h *AuthHandler) Register(c *gin.Context) {
	var dto entities.CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 注册接口不允许指定角色
	dto.Role = entities.RoleCustomer

	user, err := h.userService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.authService.GenerateTokenPair(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:         user,
		Token:        pair.Access,
		RefreshToken: pair.Refresh,
	})
}

// RegisterVendor 商家注册：创建账户并建立待审核的商家档案
func (h *AuthHandler) RegisterVendor(c *gin.Context) {
	var dto entities.RegisterVendorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(entities.CreateUserDTO{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
		Role:     entities.RoleVendor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	vendor, err := h.vendorService.CreateProfile(user.ID, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.authService.GenerateTokenPair(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusCreated, VendorRegisterResponse{
		User:         user,
		Vendor:       vendor,
		Token:        pair.Access,
		RefreshToken: pair.Refresh,
	})
}

// Login 处理用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.authService.GenerateTokenPair(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:        pair.Access,
		RefreshToken: pair.Refresh,
		User:         user,
	})
}

// GetCurrentUser 获取当前用户信息
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.FindByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
