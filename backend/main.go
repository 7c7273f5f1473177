package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"promtlearn/backend/catalog"
	"promtlearn/backend/config"
	"promtlearn/backend/middleware"
	"promtlearn/backend/repository"
	"promtlearn/backend/routes"
	"promtlearn/backend/services"
	"promtlearn/backend/storage"
	"promtlearn/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Progress lives in key-value storage; without Redis it stays in memory
	// for the lifetime of the process.
	var progressStore storage.ProgressStore
	if cfg.RedisAddr != "" {
		progressStore = storage.NewRedisProgressStore(utils.InitRedis(cfg))
	} else {
		logger.Println("REDIS_ADDR not set, progress will not survive restarts")
		progressStore = storage.NewMemoryProgressStore()
	}

	// Wire services
	cat := catalog.Default()
	users := repository.NewGormUserRepository(db)
	receipts := repository.NewGormReceiptRepository(db)
	tracker := services.NewProgressTracker(cat, progressStore, logger)
	entitlements := services.NewEntitlementService(cfg.ProductID, services.SandboxReceiptVerifier{}, receipts, tracker, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, cat, tracker, entitlements, users, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
