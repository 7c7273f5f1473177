package routes

import (
	"github.com/gofiber/fiber/v2"

	"promtlearn/backend/catalog"
	"promtlearn/backend/config"
	"promtlearn/backend/controllers"
	"promtlearn/backend/middleware"
	"promtlearn/backend/repository"
	"promtlearn/backend/services"
)

func SetupRoutes(app *fiber.App, cat *catalog.Catalog, tracker *services.ProgressTracker, entitlements *services.EntitlementService, users repository.UserRepository, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(users, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Delete("/api/user/profile", authMiddleware, userController.DeleteProfile)

	// Lesson routes
	lessonsController := controllers.NewLessonsController(cat, tracker, cfg)
	lessons := app.Group("/api/lessons", authMiddleware)
	lessons.Get("/", lessonsController.ListLessons)
	lessons.Get("/free", lessonsController.ListFreeLessons)
	lessons.Get("/premium", lessonsController.ListPremiumLessons)
	lessons.Get("/:id", lessonsController.GetLesson)
	lessons.Post("/:id/complete", lessonsController.CompleteLesson)

	// Progress routes
	progressController := controllers.NewProgressController(tracker, users, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress/reset", authMiddleware, progressController.ResetProgress)
	app.Get("/api/certificate", authMiddleware, progressController.GetCertificate)

	// Store routes
	storeController := controllers.NewStoreController(entitlements, cfg)
	app.Get("/api/store/products", storeController.GetProducts)
	app.Post("/api/store/purchase", authMiddleware, storeController.Purchase)
	app.Post("/api/store/restore", authMiddleware, storeController.Restore)
}
