package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/auth"
	"marketplace/internal/cache"
	"marketplace/internal/config"
	"marketplace/internal/logger"
	"marketplace/internal/mail"
	"marketplace/internal/messaging"
	"marketplace/internal/services"
	"marketplace/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	// 获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic("加载配置失败: " + err.Error())
	}

	// 初始化日志
	log := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: "marketplace",
		JSONFormat:  cfg.Log.JSONFormat,
	})

	log.Info("服务启动中...")

	// 初始化数据库
	db, err := storage.NewDBConnection(cfg.Database)
	if err != nil {
		log.Fatal("连接数据库失败: %v", err)
	}
	defer db.Close()

	// 执行数据库迁移
	if cfg.Database.MigrationsPath != "" {
		if err := storage.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("数据库迁移失败: %v", err)
		}
		log.Info("数据库迁移完成")
	}

	// 初始化JWT验证
	authService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// 初始化对象存储
	var objectStorage *storage.ObjectStorage
	if cfg.Storage.Enable {
		objectStorage, err = storage.NewObjectStorage(cfg.Storage)
		if err != nil {
			log.Fatal("初始化对象存储失败: %v", err)
		}
		log.Info("对象存储已启用: %s/%s", cfg.Storage.Endpoint, cfg.Storage.BucketName)
	}

	// 初始化购物车缓存
	var cartCache cache.CartCache
	if cfg.Redis.Enable {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("连接Redis失败: %v", err)
		}
		cartCache = cache.NewRedisCache(redisClient)
		log.Info("购物车缓存已启用: %s", cfg.Redis.Addr)
	}

	// 初始化Kafka生产者
	var publisher services.EventPublisher
	var kafkaProducer *messaging.KafkaProducer
	if cfg.Kafka.Enable {
		kafkaProducer, err = messaging.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("初始化Kafka生产者失败: %v", err)
		}
		defer kafkaProducer.Close()
		publisher = kafkaProducer
		log.Info("Kafka事件发布已启用: %v", cfg.Kafka.Brokers)
	}

	// 初始化邮件通知
	var notifier services.ApprovalNotifier
	if cfg.SMTP.Enable {
		notifier = mail.NewMailer(cfg.SMTP)
		log.Info("邮件通知已启用: %s", cfg.SMTP.Host)
	}

	// 初始化存储层
	repos := storage.NewRepositories(db)

	// 初始化服务层
	userService := services.NewUserService(repos.UserRepository, log)
	vendorService := services.NewVendorService(
		repos.VendorRepository, repos.UserRepository, repos.ProductRepository,
		repos.ApprovalLogRepository, publisher, notifier, log)
	productService := services.NewProductService(
		repos.ProductRepository, repos.VendorRepository, repos.ApprovalLogRepository,
		publisher, log)
	cartService := services.NewCartService(
		repos.CartRepository, repos.ProductRepository, repos.VendorRepository,
		cartCache, log)
	orderService := services.NewOrderService(repos.OrderRepository, cartService, publisher, log)
	addressService := services.NewAddressService(repos.AddressRepository, log)
	adminService := services.NewAdminService(repos.VendorRepository, repos.ProductRepository, log)

	// 初始化API路由
	router := api.NewRouter(api.RouterDeps{
		Config:         cfg,
		AuthService:    authService,
		UserService:    userService,
		VendorService:  vendorService,
		ProductService: productService,
		CartService:    cartService,
		OrderService:   orderService,
		AddressService: addressService,
		AdminService:   adminService,
		ObjectStorage:  objectStorage,
	})

	// 创建HTTP服务器
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// 在goroutine中启动服务器，以便不阻塞信号处理
	go func() {
		log.Info("服务已启动，端口: %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("监听错误: %v", err)
		}
	}()

	// 等待中断信号优雅关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务...")

	// 创建一个5秒的超时上下文，用于优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("服务器关闭错误: %v", err)
	}

	log.Info("服务已关闭")
}
