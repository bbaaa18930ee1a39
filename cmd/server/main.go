package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accountingapp "github.com/gescom/backend/internal/application/accounting"
	catalogapp "github.com/gescom/backend/internal/application/catalog"
	inventoryapp "github.com/gescom/backend/internal/application/inventory"
	partnerapp "github.com/gescom/backend/internal/application/partner"
	salesapp "github.com/gescom/backend/internal/application/sales"
	"github.com/gescom/backend/internal/infrastructure/config"
	"github.com/gescom/backend/internal/infrastructure/logger"
	"github.com/gescom/backend/internal/infrastructure/persistence"
	"github.com/gescom/backend/internal/interfaces/http/handler"
	"github.com/gescom/backend/internal/interfaces/http/middleware"
	"github.com/gescom/backend/internal/interfaces/http/router"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (TOML)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.HTTP.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Repositories
	enterpriseRepo := persistence.NewGormEnterpriseRepository(db.DB)
	posRepo := persistence.NewGormPOSRepository(db.DB)
	posConfigRepo := persistence.NewGormPOSWarehouseConfigRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	accountClassRepo := persistence.NewGormAccountClassRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	accountingConfigRepo := persistence.NewGormAccountingConfigRepository(db.DB)
	journalRepo := persistence.NewGormJournalRepository(db.DB)
	inventoryItemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)

	// Transaction scopes
	salesScope := persistence.NewGormSalesTransactionScope(db.DB)
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)

	// Application services
	enterpriseService := partnerapp.NewEnterpriseService(enterpriseRepo, log)
	warehouseService := partnerapp.NewWarehouseService(warehouseRepo, log)
	posService := partnerapp.NewPOSService(posRepo, posConfigRepo, warehouseRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	coaService := accountingapp.NewChartOfAccountsService(accountingConfigRepo, accountRepo, accountClassRepo)
	journalQueryService := accountingapp.NewJournalQueryService(journalRepo)
	journalWriter := accountingapp.NewJournalWriter()
	warehouseResolver := inventoryapp.NewWarehouseResolver(posConfigRepo, warehouseRepo)
	stockService := inventoryapp.NewStockService(inventoryScope, warehouseResolver, inventoryItemRepo, movementRepo, log)
	cartService := salesapp.NewCartService(cartRepo, productRepo, log)
	finalizerService := salesapp.NewFinalizerService(salesScope, warehouseResolver, coaService, journalWriter, log)

	// HTTP engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(db))
	r.Register(handler.NewEnterpriseHandler(enterpriseService))
	r.Register(handler.NewWarehouseHandler(warehouseService))
	r.Register(handler.NewPOSHandler(posService))
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewAccountingHandler(coaService, journalQueryService))
	r.Register(handler.NewStockHandler(stockService))
	r.Register(handler.NewCartHandler(cartService, finalizerService))
	r.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
