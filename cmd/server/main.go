package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/cache"
	"shop_backend/internal/config"
	"shop_backend/internal/database"
	"shop_backend/internal/events"
	"shop_backend/internal/handlers"
	"shop_backend/internal/repository"
	"shop_backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache (optional)
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
	}

	// Initialize Kafka publisher (optional)
	var publisher events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderTopic)
		if err != nil {
			log.Fatal("Failed to connect to Kafka:", err)
		}
	}

	// Ensure upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	catalogService := services.NewCatalogService(itemRepo, cacheClient, time.Duration(cfg.CacheTTL)*time.Second)
	cartService := services.NewCartService(cartRepo, itemRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, publisher)
	adminService := services.NewAdminService(userRepo, itemRepo, orderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(adminService, catalogService, cfg.UploadDir)

	// Setup routes
	router := gin.Default()
	router.Static("/static", cfg.UploadDir)

	// Public endpoints
	router.POST("/register", authHandler.Register)
	router.POST("/token", authHandler.Token)
	router.GET("/items", catalogHandler.ListItems)
	router.GET("/items/:key", catalogHandler.GetItemOrCategory)
	router.GET("/search/items", catalogHandler.SearchItems)

	// Authenticated endpoints
	auth := router.Group("/", handlers.AuthMiddleware(authService))
	{
		auth.GET("/users/me", authHandler.Me)
		auth.POST("/user/cart", cartHandler.AddToCart)
		auth.GET("/user/cart", cartHandler.ListCart)
		auth.DELETE("/user/cart/:id", cartHandler.RemoveFromCart)
		auth.POST("/order", orderHandler.PlaceOrder)
		auth.GET("/user/orders", orderHandler.MyOrders)
	}

	// Admin endpoints
	admin := router.Group("/admin", handlers.AuthMiddleware(authService), handlers.AdminMiddleware(authService))
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/order/items/:id", adminHandler.ListOrderItems)
		admin.POST("/create/items", adminHandler.CreateItem)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
