package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sellpoint/pos-api/internal/application/service"
	"github.com/sellpoint/pos-api/internal/config"
	"github.com/sellpoint/pos-api/internal/infrastructure/database"
	"github.com/sellpoint/pos-api/internal/infrastructure/repository"
	"github.com/sellpoint/pos-api/internal/presentation/http/handler"
	"github.com/sellpoint/pos-api/internal/presentation/http/routes"
	"github.com/sellpoint/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.App); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	eventRepo := repository.NewEventRepository(db)
	billRepo := repository.NewBillRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	itemService := service.NewItemService(itemRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	eventService := service.NewEventService(eventRepo, categoryRepo, itemRepo)
	userService := service.NewUserService(userRepo)
	checkoutService := service.NewCheckoutService(billRepo, itemRepo, userRepo, eventRepo)
	reportService := service.NewReportService(reportRepo, billRepo, itemRepo, userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Item:     handler.NewItemHandler(itemService),
		Category: handler.NewCategoryHandler(categoryService),
		Event:    handler.NewEventHandler(eventService),
		User:     handler.NewUserHandler(userService),
		Bill:     handler.NewBillHandler(checkoutService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
