package router

import (
	"database/sql"

	"holdup_backend/internal/handlers"
	"holdup_backend/internal/middleware"
	"holdup_backend/internal/repositories"
	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	productRepo := repositories.NewProductRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	productService := services.NewProductService(productRepo, db)
	locationService := services.NewLocationService(locationRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, db)
	checkoutService := services.NewCheckoutService(transactionRepo, productRepo, inventoryRepo, db)
	webhookService := services.NewWebhookService(transactionRepo, productRepo, inventoryRepo, locationRepo, db)
	customerService := services.NewCustomerService(customerRepo, db)
	reportService := services.NewReportService(reportRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	locationHandler := handlers.NewLocationHandler(locationService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// External webhook route, guarded by a shared secret instead of a JWT.
	webhookSecret := utils.Getenv("WEBHOOK_SECRET", "default_dev_secret")
	SetupWebhookRoutes(apiV1, webhookHandler, webhookSecret)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupCheckoutRoutes(authenticated, checkoutHandler)
		SetupProductRoutes(authenticated, productHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler, reportHandler)
		SetupLocationRoutes(authenticated, locationHandler)
		SetupCustomerRoutes(authenticated, customerHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
