// Package router provides HTTP routing configuration.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/integration/entrypoint/controller"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the route configuration and controllers.
type Router struct {
	healthController    *controller.HealthController
	authController      *controller.AuthController
	saleController      *controller.SaleController
	purchaseController  *controller.PurchaseController
	itemController      *controller.ItemController
	customerController  *controller.CustomerController
	accountController   *controller.AccountController
	dashboardController *controller.DashboardController
	authMiddleware      *middleware.AuthMiddleware
	loginRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	saleController *controller.SaleController,
	purchaseController *controller.PurchaseController,
	itemController *controller.ItemController,
	customerController *controller.CustomerController,
	accountController *controller.AccountController,
	dashboardController *controller.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
	loginRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		saleController:      saleController,
		purchaseController:  purchaseController,
		itemController:      itemController,
		customerController:  customerController,
		accountController:   accountController,
		dashboardController: dashboardController,
		authMiddleware:      authMiddleware,
		loginRateLimiter:    loginRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	engine := gin.Default()

	r.setupHealthRoutes(engine)
	r.setupAPIRoutes(engine)

	return engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the versioned API endpoints.
func (r *Router) setupAPIRoutes(engine *gin.Engine) {
	v1 := engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
	}

	sales := v1.Group("/sales")
	sales.Use(r.authMiddleware.Authenticate())
	{
		sales.GET("", r.saleController.List)
		sales.POST("", r.saleController.Create)
	}

	purchases := v1.Group("/purchases")
	purchases.Use(r.authMiddleware.Authenticate())
	{
		purchases.GET("", r.purchaseController.List)
		purchases.POST("", r.purchaseController.Create)
		purchases.POST("/:id/receive", r.purchaseController.Receive)
	}

	items := v1.Group("/items")
	items.Use(r.authMiddleware.Authenticate())
	{
		items.GET("", r.itemController.List)
		items.POST("", r.itemController.Create)
		items.POST("/:id/adjust-stock", r.itemController.AdjustStock)
	}

	customers := v1.Group("/customers")
	customers.Use(r.authMiddleware.Authenticate())
	{
		customers.GET("", r.customerController.List)
		customers.POST("", r.customerController.Create)
	}

	accounts := v1.Group("/accounts")
	accounts.Use(r.authMiddleware.Authenticate())
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.accountController.Create)
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(r.authMiddleware.Authenticate())
	{
		dashboard.GET("/metrics", r.dashboardController.GetMetrics)
		dashboard.GET("/sales-series", r.dashboardController.GetSalesSeries)
		dashboard.GET("/category-breakdown", r.dashboardController.GetCategoryBreakdown)
		dashboard.GET("/top-performers", r.dashboardController.GetTopPerformers)
		dashboard.GET("/low-stock", r.dashboardController.GetLowStock)
		dashboard.GET("/recent-activity", r.dashboardController.GetRecentActivity)
	}
}
