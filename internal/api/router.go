package api

import (
	"marketplace/internal/api/handlers"
	"marketplace/internal/auth"
	"marketplace/internal/config"
	"marketplace/internal/domain/entities"
	"marketplace/internal/middleware"
	"marketplace/internal/services"
	"marketplace/internal/storage"

	"github.com/gin-gonic/gin"
)

// RouterDeps 路由依赖
type RouterDeps struct {
	Config         *config.Config
	AuthService    *auth.JWTService
	UserService    *services.UserService
	VendorService  *services.VendorService
	ProductService *services.ProductService
	CartService    *services.CartService
	OrderService   *services.OrderService
	AddressService *services.AddressService
	AdminService   *services.AdminService
	ObjectStorage  *storage.ObjectStorage
}

// NewRouter 创建API路由
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	// 添加中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	// 健康检查路由
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// 初始化handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.UserService, deps.VendorService)
	catalogHandler := handlers.NewCatalogHandler(deps.ProductService, deps.ObjectStorage)
	cartHandler := handlers.NewCartHandler(deps.CartService)
	orderHandler := handlers.NewOrderHandler(deps.OrderService)
	vendorHandler := handlers.NewVendorHandler(deps.VendorService, deps.ProductService, deps.ObjectStorage)
	adminHandler := handlers.NewAdminHandler(deps.VendorService, deps.ProductService, deps.AdminService)
	addressHandler := handlers.NewAddressHandler(deps.AddressService)

	secret := deps.Config.JWT.Secret

	// API路由组
	apiV1 := router.Group("/api/v1")
	{
		// 认证路由 - 无需认证
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/register/vendor", authHandler.RegisterVendor)

			// 需要认证的路由
			authProtected := authGroup.Group("")
			authProtected.Use(middleware.AuthMiddleware(secret))
			{
				authProtected.GET("/me", authHandler.GetCurrentUser)
			}
		}

		// 商品浏览路由 - 买家无需认证
		products := apiV1.Group("/products")
		{
			products.GET("", catalogHandler.List)
			products.GET("/:id", catalogHandler.FindOne)
			products.GET("/:id/image", catalogHandler.ImageURL)
		}

		// 购物车路由 - 需要认证
		cart := apiV1.Group("/cart")
		cart.Use(middleware.AuthMiddleware(secret))
		{
			cart.GET("", cartHandler.View)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		// 结算与订单路由 - 需要认证
		orders := apiV1.Group("/orders")
		orders.Use(middleware.AuthMiddleware(secret))
		{
			orders.GET("/checkout", orderHandler.Checkout)
			orders.POST("/payment", orderHandler.ProcessPayment)
			orders.GET("", orderHandler.MyOrders)
			orders.GET("/:id/items", orderHandler.OrderItems)
		}

		// 收货地址路由 - 需要认证
		addresses := apiV1.Group("/addresses")
		addresses.Use(middleware.AuthMiddleware(secret))
		{
			addresses.POST("", addressHandler.Create)
			addresses.GET("", addressHandler.List)
			addresses.DELETE("/:id", addressHandler.Delete)
		}

		// 商家路由 - 需要商家角色
		vendor := apiV1.Group("/vendor")
		vendor.Use(middleware.AuthMiddleware(secret), middleware.RoleMiddleware(string(entities.RoleVendor)))
		{
			vendor.GET("/dashboard", vendorHandler.Dashboard)
			vendor.POST("/id-proof", vendorHandler.UploadIDProof)

			vendor.POST("/products", vendorHandler.CreateProduct)
			vendor.GET("/products", vendorHandler.ListProducts)
			vendor.GET("/products/:id", vendorHandler.FindProduct)
			vendor.PUT("/products/:id", vendorHandler.UpdateProduct)
			vendor.DELETE("/products/:id", vendorHandler.DeleteProduct)
			vendor.POST("/products/:id/image", vendorHandler.UploadProductImage)
		}

		// 管理端路由 - 需要管理员角色
		admin := apiV1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(secret), middleware.RoleMiddleware(string(entities.RoleAdmin)))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)

			admin.GET("/vendors", adminHandler.ListVendors)
			admin.GET("/vendors/:id", adminHandler.FindVendor)
			admin.PUT("/vendors/:id/approve", adminHandler.ApproveVendor)
			admin.PUT("/vendors/:id/reject", adminHandler.RejectVendor)
			admin.PUT("/vendors/:id/block", adminHandler.BlockVendor)
			admin.PUT("/vendors/:id/unblock", adminHandler.UnblockVendor)
			admin.GET("/vendors/:id/logs", adminHandler.VendorLogs)

			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.FindProduct)
			admin.PUT("/products/:id/block", adminHandler.BlockProduct)
			admin.PUT("/products/:id/unblock", adminHandler.UnblockProduct)
			admin.GET("/products/:id/logs", adminHandler.ProductLogs)
		}
	}

	return router
}
