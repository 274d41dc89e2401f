package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/config"
	gatewayclient "github.com/plantpass/pos-api/internal/infrastructure/gateway"
	"github.com/plantpass/pos-api/internal/infrastructure/session"
	"github.com/plantpass/pos-api/internal/presentation/http/handler"
	"github.com/plantpass/pos-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Backend gateway client
	client := gatewayclient.NewClient(&cfg.Gateway)
	txGateway := gatewayclient.NewTransactionGateway(client)
	catalogGateway := gatewayclient.NewCatalogGateway(client)
	adminGateway := gatewayclient.NewAdminGateway(client)

	// Session stores
	draftStore := session.NewDraftStore(cfg.Session.DraftTTL, cfg.Session.SweepInterval)
	idempotencyStore := session.NewIdempotencyStore(cfg.Session.IdempotencyTTL)

	// Initialize services
	draftService := service.NewDraftService(draftStore, txGateway, catalogGateway, cfg.Order.OrderIDPrefixLength)
	catalogService := service.NewCatalogService(catalogGateway)
	adminService := service.NewAdminService(adminGateway)
	trackingService := service.NewTrackingService(txGateway, cfg.Order.RecentUnpaidLimit)
	exportService := service.NewExportService(txGateway)

	// Initialize handlers
	handlers := &routes.Handlers{
		Draft:    handler.NewDraftHandler(draftService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Admin:    handler.NewAdminHandler(adminService),
		Tracking: handler.NewTrackingHandler(trackingService, exportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:              cfg,
		IdempotencyStore: idempotencyStore,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Backend gateway: %s", cfg.Gateway.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
