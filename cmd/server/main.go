package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bakeryapp "github.com/comptoir/backend/internal/application/bakery"
	casefileapp "github.com/comptoir/backend/internal/application/casefile"
	shellapp "github.com/comptoir/backend/internal/application/shell"
	ticketingapp "github.com/comptoir/backend/internal/application/ticketing"
	"github.com/comptoir/backend/internal/infrastructure/assetcache"
	"github.com/comptoir/backend/internal/infrastructure/config"
	"github.com/comptoir/backend/internal/infrastructure/logger"
	"github.com/comptoir/backend/internal/infrastructure/persistence"
	"github.com/comptoir/backend/internal/infrastructure/printing"
	"github.com/comptoir/backend/internal/infrastructure/scanner"
	"github.com/comptoir/backend/internal/interfaces/http/handler"
	"github.com/comptoir/backend/internal/interfaces/http/middleware"
	"github.com/comptoir/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Comptoir backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the key-value store with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(cfg.Store.Path, gormLog)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing store", zap.Error(err))
		}
	}()
	log.Info("Store opened", zap.String("path", cfg.Store.Path))

	store := persistence.NewGormStore(db, log)

	// Repositories over the store
	catalogRepo := persistence.NewCatalogRepository(store)
	cartRepo := persistence.NewCartRepository(store)
	rateRepo := persistence.NewRateRepository(store)
	eventRepo := persistence.NewEventRepository(store)
	caseRepo := persistence.NewCaseRepository(store)
	tabRepo := persistence.NewTabRepository(store)

	// PDF rendering is deferred until the first document is requested, so
	// installations without Chrome still serve everything else.
	renderer := printing.NewLazyRenderer(func() (printing.PDFRenderer, error) {
		return printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Print.Timeout,
			NoSandbox:      cfg.Print.NoSandbox,
			Logger:         log,
		})
	})
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing renderer", zap.Error(err))
		}
	}()

	ticketScanner := scanner.NewSimulated(cfg.Scanner.CameraAvailable, log)

	// Application services
	bakeryService := bakeryapp.NewService(catalogRepo, cartRepo, rateRepo, renderer)
	ticketingService := ticketingapp.NewService(eventRepo, ticketScanner)
	casefileService := casefileapp.NewService(caseRepo, renderer)
	shellService := shellapp.NewService(tabRepo, catalogRepo, cartRepo, rateRepo, eventRepo, caseRepo)

	// HTTP handlers
	bakeryHandler := handler.NewBakeryHandler(bakeryService)
	ticketingHandler := handler.NewTicketingHandler(ticketingService)
	casefileHandler := handler.NewCasefileHandler(casefileService)
	shellHandler := handler.NewShellHandler(shellService)

	// Offline asset cache for the application shell
	assets := assetcache.New(cfg.Assets.Dir, log)
	assets.Preload(cfg.Assets.Shell)
	assetsHandler := handler.NewAssetsHandler(assets)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	engine.GET("/health", healthHandler(db))
	assetsHandler.Register(engine)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(shellHandler).
		Register(bakeryHandler).
		Register(ticketingHandler).
		Register(casefileHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
				"store":  "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  "ok",
		})
	}
}
