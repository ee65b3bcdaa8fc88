package router

import (
	"context"
	"time"

	"heladosupply/internal/config"
	"heladosupply/internal/handler"
	"heladosupply/internal/middleware"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"
	"heladosupply/internal/service"
	"heladosupply/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// db and rdb may be nil (memory driver / no redis). ctx bounds the
// background cache-invalidator goroutine.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client, stores *repository.Stores, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	// ── Notifier ─────────────────────────────────────────────────────────────
	publisher := notify.NewPublisher(rdb)
	subscriber := notify.NewSubscriber(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(stores.Products, rdb, publisher)
	customerSvc := service.NewCustomerService(stores.Customers, publisher)
	orderSvc := service.NewOrderService(stores.Orders, stores.Products, stores.Customers, publisher, dispatcher, cfg.PDFStoragePath)
	providerSvc := service.NewProviderService(stores.Providers, publisher)
	discountSvc := service.NewDiscountService(stores.Discounts, publisher)
	purchaseSvc := service.NewPurchaseService(stores.Purchases, publisher)
	userSvc := service.NewUserService(stores.Users, publisher)
	backupSvc := service.NewBackupService(stores, publisher)
	reportSvc := service.NewReportService(stores.Orders, stores.Products)

	service.StartCacheInvalidator(ctx, subscriber, catalogSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(catalogSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	providersH := handler.NewProvidersHandler(providerSvc)
	discountsH := handler.NewDiscountsHandler(discountSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	usersH := handler.NewUsersHandler(userSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	dashboardH := handler.NewDashboardHandler(reportSvc)
	eventsH := handler.NewEventsHandler(subscriber)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/low-stock", productsH.ListLowStock)
			products.GET("/:id", productsH.Get)
			products.POST("", productsH.Upsert)
			products.PUT("", productsH.Upsert)
			products.DELETE("/:id", productsH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", customersH.List)
			customers.POST("", customersH.Upsert)
			customers.PUT("", customersH.Upsert)
			customers.DELETE("/:id", customersH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.GET("/:id/receipt", ordersH.Receipt)
			orders.POST("", ordersH.Create)
		}

		providers := v1.Group("/providers")
		{
			providers.GET("", providersH.List)
			providers.POST("", providersH.Upsert)
			providers.PUT("", providersH.Upsert)
			providers.DELETE("/:id", providersH.Delete)
		}

		discounts := v1.Group("/discounts")
		{
			discounts.GET("", discountsH.List)
			discounts.POST("", discountsH.Upsert)
			discounts.PUT("", discountsH.Upsert)
			discounts.DELETE("/:id", discountsH.Delete)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", purchasesH.List)
			purchases.POST("", purchasesH.Upsert)
			purchases.PUT("", purchasesH.Upsert)
			purchases.DELETE("/:id", purchasesH.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", usersH.List)
			users.POST("", usersH.Upsert)
			users.PUT("", usersH.Upsert)
			users.DELETE("/:id", usersH.Delete)
		}

		v1.GET("/backup", backupH.Export)
		v1.POST("/backup/restore", backupH.Restore)

		v1.GET("/dashboard/stats", dashboardH.Stats)
		v1.GET("/dashboard/sales-weekly", dashboardH.WeeklySales)

		v1.GET("/events", eventsH.Stream)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
