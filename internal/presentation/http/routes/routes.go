package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellpoint/pos-api/internal/config"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	domainRepo "github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/internal/presentation/http/handler"
	"github.com/sellpoint/pos-api/internal/presentation/http/middleware"
	"github.com/sellpoint/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Item     *handler.ItemHandler
	Category *handler.CategoryHandler
	Event    *handler.EventHandler
	User     *handler.UserHandler
	Bill     *handler.BillHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(string(enum.RoleAdmin))
	staffOnly := middleware.RequireRole(string(enum.RoleAdmin), string(enum.RoleCashier))

	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/low-stock", h.Item.LowStock)
		items.GET("/barcode/:code", staffOnly, h.Item.GetByBarcode)
		items.GET("/:id", h.Item.Get)
		items.POST("", adminOnly, h.Item.Create)
		items.PUT("/:id", adminOnly, h.Item.Update)
		items.DELETE("/:id", adminOnly, h.Item.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", adminOnly, h.Category.Create)
		categories.PUT("/:id", adminOnly, h.Category.Update)
		categories.DELETE("/:id", adminOnly, h.Category.Delete)
	}

	events := protected.Group("/events")
	{
		events.GET("", h.Event.List)
		events.GET("/active", h.Event.Active)
		events.GET("/:id", h.Event.Get)
		events.POST("", adminOnly, h.Event.Create)
		events.PUT("/:id", adminOnly, h.Event.Update)
		events.DELETE("/:id", adminOnly, h.Event.Delete)
	}

	users := protected.Group("/users")
	{
		users.GET("/cashiers", adminOnly, h.User.ListCashiers)
		users.POST("/cashiers", adminOnly, h.User.CreateCashier)
		users.PUT("/cashiers/:id", adminOnly, h.User.UpdateCashier)
		users.DELETE("/cashiers/:id", adminOnly, h.User.DeleteCashier)
		users.GET("/customers", staffOnly, h.User.ListCustomers)
		users.GET("/customers/:id", staffOnly, h.User.GetCustomer)
	}

	bills := protected.Group("/bills")
	bills.Use(staffOnly)
	{
		// Checkout honors Idempotency-Key to make retries replay-safe
		bills.POST("/complete", middleware.Idempotency(deps.IdempotencyRepo), h.Bill.Complete)
		bills.GET("", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
	}

	reports := protected.Group("/reports")
	reports.Use(adminOnly)
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/inventory", h.Report.Inventory)
		reports.GET("/category-sales", h.Report.CategorySales)
		reports.GET("/most-sold-items", h.Report.MostSoldItems)
		reports.GET("/monthly-revenue", h.Report.MonthlyRevenue)
	}

	protected.GET("/dashboard", adminOnly, h.Report.Dashboard)
}
