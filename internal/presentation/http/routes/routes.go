package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/config"
	"github.com/plantpass/pos-api/internal/infrastructure/session"
	"github.com/plantpass/pos-api/internal/presentation/http/handler"
	"github.com/plantpass/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Draft    *handler.DraftHandler
	Catalog  *handler.CatalogHandler
	Admin    *handler.AdminHandler
	Tracking *handler.TrackingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg              *config.Config
	IdempotencyStore *session.IdempotencyStore
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.TokenPassthrough())

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
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerDraftRoutes(v1, h, deps)
		registerCatalogRoutes(v1, h)
		registerTrackingRoutes(v1, h)
		registerAdminRoutes(v1, h)
	}

	return router
}

func registerDraftRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	drafts := v1.Group("/drafts")
	{
		drafts.POST("", h.Draft.Create)
		drafts.GET("/:id", h.Draft.Get)
		drafts.DELETE("/:id", h.Draft.Discard)

		drafts.PUT("/:id/items/:sku", h.Draft.SetQuantity)
		drafts.PUT("/:id/discounts/:name", h.Draft.ToggleDiscount)
		drafts.PUT("/:id/voucher", h.Draft.SetVoucher)
		drafts.PUT("/:id/email", h.Draft.SetEmail)

		// Submit replays the cached response for a repeated
		// Idempotency-Key so a double click records one order.
		drafts.POST("/:id/submit", middleware.Idempotency(deps.IdempotencyStore), h.Draft.Submit)
		drafts.POST("/:id/update", h.Draft.Update)
		drafts.POST("/:id/complete", h.Draft.Complete)
		drafts.POST("/:id/lookup", h.Draft.Lookup)
		drafts.POST("/:id/reset", h.Draft.Reset)
		drafts.DELETE("/:id/transaction", h.Draft.DeleteTransaction)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/products", h.Catalog.ListProducts)
	v1.GET("/discounts", h.Catalog.ListDiscounts)
	v1.GET("/payment-methods", h.Catalog.ListPaymentMethods)

	// Catalog edits are an admin concern.
	edits := v1.Group("")
	edits.Use(middleware.RequireToken())
	{
		edits.PUT("/products", h.Catalog.ReplaceProducts)
		edits.PUT("/discounts", h.Catalog.ReplaceDiscounts)
		edits.PUT("/payment-methods", h.Catalog.ReplacePaymentMethods)
	}
}

func registerTrackingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tracking := v1.Group("/tracking")
	{
		tracking.GET("/recent-unpaid", h.Tracking.RecentUnpaid)
		tracking.GET("/sales-analytics", h.Tracking.SalesAnalytics)
	}
}

func registerAdminRoutes(v1 *gin.RouterGroup, h *Handlers) {
	admin := v1.Group("/admin")
	{
		admin.POST("/login", h.Admin.Login)
		admin.GET("/feature-toggles", h.Admin.GetFeatureToggles)

		protected := admin.Group("")
		protected.Use(middleware.RequireToken())
		{
			protected.POST("/change-password", h.Admin.ChangePassword)
			protected.PUT("/feature-toggles", h.Admin.UpdateFeatureToggles)
			protected.POST("/feature-toggles/refresh", h.Admin.RefreshFeatureToggles)
			protected.GET("/lock/:resource", h.Admin.GetLockState)
			protected.PUT("/lock/:resource", h.Admin.SetLockState)
			protected.GET("/export/transactions", h.Tracking.ExportTransactions)
		}
	}
}
