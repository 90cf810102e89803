package router

import (
	"holdup_backend/internal/handlers"
	"holdup_backend/internal/middleware"
	"holdup_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the unauthenticated auth routes.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.Login)
	group.POST("/refresh-token", authHandler.Refresh)
}

// SetupAuthenticatedAuthRoutes sets up the session-bound auth routes.
// Staff registration is reserved for the Super Admin.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.Me)
	group.POST("/register", middleware.RoleAuthMiddleware(models.RoleSuperAdmin), authHandler.Register)
}

// SetupWebhookRoutes sets up the external order webhook. It sits outside the
// JWT-authenticated group and is guarded by a static bearer secret.
func SetupWebhookRoutes(apiGroup *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, secret string) {
	webhookRoutes := apiGroup.Group("/webhooks")
	webhookRoutes.Use(middleware.WebhookAuthMiddleware(secret))
	{
		webhookRoutes.POST("/orders", webhookHandler.ProcessOrder)
	}
}

// SetupCheckoutRoutes sets up the POS checkout route.
func SetupCheckoutRoutes(authenticatedGroup *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkoutRoutes := authenticatedGroup.Group("/pos")
	checkoutRoutes.Use(middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager, models.RoleCashier))
	{
		checkoutRoutes.POST("/checkout", checkoutHandler.Checkout)
	}
}

// SetupProductRoutes sets up the product catalog routes.
// Reads are open to any authenticated session; writes are restricted, and
// approval decisions are reserved for the Super Admin.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	authenticatedGroup.GET("/products", productHandler.GetProducts)
	authenticatedGroup.GET("/products/low-stock", productHandler.GetLowStockProducts)

	productWriteRoutes := authenticatedGroup.Group("/products")
	productWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager, models.RoleInventoryManager))
	{
		productWriteRoutes.POST("", productHandler.CreateProduct)
		productWriteRoutes.POST("/import", productHandler.ImportProducts)
	}

	authenticatedGroup.PUT("/products/:id/approve",
		middleware.RoleAuthMiddleware(models.RoleSuperAdmin),
		productHandler.ApproveProduct)
}

// SetupInventoryRoutes sets up the stock adjustment and transfer routes,
// plus the reorder-level read.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler, reportHandler *handlers.ReportHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	{
		inventoryRoutes.GET("/low-stock", reportHandler.GetReorderAlerts)
		inventoryRoutes.POST("/adjust",
			middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager, models.RoleInventoryManager),
			inventoryHandler.AdjustStock)
		inventoryRoutes.POST("/transfer",
			middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager, models.RoleWarehouseManager),
			inventoryHandler.TransferStock)
	}
}

// SetupLocationRoutes sets up the location routes.
func SetupLocationRoutes(authenticatedGroup *gin.RouterGroup, locationHandler *handlers.LocationHandler) {
	authenticatedGroup.GET("/locations", locationHandler.GetLocations)
	authenticatedGroup.POST("/locations",
		middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager),
		locationHandler.CreateLocation)
}

// SetupCustomerRoutes sets up the customer routes.
func SetupCustomerRoutes(authenticatedGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := authenticatedGroup.Group("/customers")
	customerRoutes.Use(middleware.RoleAuthMiddleware(models.RoleSuperAdmin, models.RoleStoreManager, models.RoleCashier))
	{
		customerRoutes.GET("", customerHandler.GetCustomers)
		customerRoutes.POST("", customerHandler.CreateCustomer)
	}
}

// SetupReportRoutes sets up the reporting routes. All reports are reads and
// open to any authenticated session; analytics is additionally self-scoped
// for location-bound users inside the service.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	authenticatedGroup.GET("/analytics", reportHandler.GetAnalytics)

	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/profit-margin", reportHandler.GetProfitMargins)
		reportRoutes.GET("/dead-stock", reportHandler.GetDeadStock)
	}
}
