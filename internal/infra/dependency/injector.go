// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopledger/backend/config"
	"github.com/shopledger/backend/internal/application/usecase/account"
	"github.com/shopledger/backend/internal/application/usecase/auth"
	"github.com/shopledger/backend/internal/application/usecase/customer"
	"github.com/shopledger/backend/internal/application/usecase/dashboard"
	"github.com/shopledger/backend/internal/application/usecase/item"
	"github.com/shopledger/backend/internal/application/usecase/purchase"
	"github.com/shopledger/backend/internal/application/usecase/sale"
	"github.com/shopledger/backend/internal/infra/server/router"
	"github.com/shopledger/backend/internal/integration/adapters"
	"github.com/shopledger/backend/internal/integration/email"
	"github.com/shopledger/backend/internal/integration/entrypoint/controller"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
	"github.com/shopledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router

	// LowStockWorker is non-nil only when the digest worker is enabled
	// and a recipient is configured.
	LowStockWorker *email.Worker
}

// NewInjector creates and wires all application dependencies.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	itemRepo := persistence.NewItemRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	accountRepo := persistence.NewBankAccountRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Dashboard engine configuration
	dashboardCache := dashboard.NewCacheWithTTL(redisClient, cfg.Dashboard.CacheTTL)
	settings := dashboard.Settings{
		Targets: dashboard.SeriesTargets{
			Daily:   decimal.NewFromFloat(cfg.Dashboard.DailyTarget),
			Monthly: decimal.NewFromFloat(cfg.Dashboard.MonthlyTarget),
		},
		ItemTrends: dashboard.TrendThresholds{
			Up:     cfg.Dashboard.ItemTrendUp,
			Steady: cfg.Dashboard.ItemTrendSteady,
		},
		CustomerTrends: dashboard.TrendThresholds{
			Up:     cfg.Dashboard.CustomerTrendUp,
			Steady: cfg.Dashboard.CustomerTrendSteady,
		},
		TopN: cfg.Dashboard.TopN,
	}

	// Use cases
	registerUserUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUserUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUserUseCase := auth.NewLogoutUserUseCase(tokenService)

	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, itemRepo, customerRepo)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)

	createPurchaseUseCase := purchase.NewCreatePurchaseUseCase(purchaseRepo, itemRepo)
	listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)
	receivePurchaseUseCase := purchase.NewReceivePurchaseUseCase(purchaseRepo, itemRepo)

	createItemUseCase := item.NewCreateItemUseCase(itemRepo)
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	adjustStockUseCase := item.NewAdjustStockUseCase(itemRepo)

	createCustomerUseCase := customer.NewCreateCustomerUseCase(customerRepo)
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo)

	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)

	getMetricsUseCase := dashboard.NewGetMetricsUseCase(dashboardRepo, dashboardCache)
	getSalesSeriesUseCase := dashboard.NewGetSalesSeriesUseCase(dashboardRepo, dashboardCache, settings.Targets)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(dashboardRepo, dashboardCache)
	getTopPerformersUseCase := dashboard.NewGetTopPerformersUseCase(dashboardRepo, dashboardCache, settings)
	getLowStockUseCase := dashboard.NewGetLowStockUseCase(dashboardRepo)
	getRecentActivityUseCase := dashboard.NewGetRecentActivityUseCase(dashboardRepo)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUserUseCase, loginUserUseCase, refreshTokenUseCase, logoutUserUseCase)
	saleController := controller.NewSaleController(createSaleUseCase, listSalesUseCase)
	purchaseController := controller.NewPurchaseController(createPurchaseUseCase, listPurchasesUseCase, receivePurchaseUseCase)
	itemController := controller.NewItemController(createItemUseCase, listItemsUseCase, adjustStockUseCase)
	customerController := controller.NewCustomerController(createCustomerUseCase, listCustomersUseCase)
	accountController := controller.NewAccountController(createAccountUseCase, listAccountsUseCase)
	dashboardController := controller.NewDashboardController(
		getMetricsUseCase,
		getSalesSeriesUseCase,
		getCategoryBreakdownUseCase,
		getTopPerformersUseCase,
		getLowStockUseCase,
		getRecentActivityUseCase,
	)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	loginRateLimiter := middleware.NewRateLimiter()

	appRouter := router.NewRouter(
		healthController,
		authController,
		saleController,
		purchaseController,
		itemController,
		customerController,
		accountController,
		dashboardController,
		authMiddleware,
		loginRateLimiter,
	)

	var lowStockWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.DigestTo != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		lowStockWorker = email.NewWorker(getLowStockUseCase, sender, cfg.Email.DigestTo, cfg.Email.PollInterval)
	}

	return &Injector{
		Config:         cfg,
		Router:         appRouter,
		LowStockWorker: lowStockWorker,
	}
}
