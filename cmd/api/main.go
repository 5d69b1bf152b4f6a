package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/geo"
	"github.com/KarimF430/Assad-motors-sub000/internal/handler"
	"github.com/KarimF430/Assad-motors-sub000/internal/integrations/ratefeed"
	"github.com/KarimF430/Assad-motors-sub000/internal/middleware"
	"github.com/KarimF430/Assad-motors-sub000/internal/pricing"
	"github.com/KarimF430/Assad-motors-sub000/internal/repository"
	"github.com/KarimF430/Assad-motors-sub000/internal/scheduler"
	"github.com/KarimF430/Assad-motors-sub000/internal/service"
	"github.com/KarimF430/Assad-motors-sub000/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize catalog store
	var catalog repository.CatalogRepository
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		catalog = repository.NewPostgresCatalog(db)
	} else {
		mem := repository.NewMemoryCatalog()
		if err := repository.SeedDemo(context.Background(), mem); err != nil {
			logger.Fatalf("Failed to seed demo catalog: %v", err)
		}
		logger.Warn("DB_CONN not set, serving the in-memory demo catalog")
		catalog = mem
	}

	if cfg.RedisAddr != "" {
		cache := repository.NewRedisCache(cfg.RedisAddr)
		defer cache.Close()
		if err := cache.Ping(context.Background()); err != nil {
			logger.Warnf("Redis unavailable, catalog reads will miss the cache: %v", err)
		}
		catalog = repository.NewCachedCatalog(catalog, cache, cfg.CatalogCacheTTL, logger)
	}

	// Reference data
	policy, err := pricing.LoadPolicyFile(cfg.TaxPolicyPath)
	if err != nil {
		logger.Fatalf("Failed to load tax policy: %v", err)
	}
	cities, err := geo.Cities()
	if err != nil {
		logger.Fatalf("Failed to load city table: %v", err)
	}

	// Reference rate refresh
	rates := service.NewRateBook(cfg.DefaultRatePercent)
	jobs := scheduler.New(logger, 30*time.Second)
	if cfg.RateFeedURL != "" {
		feed := ratefeed.NewClient(cfg.RateFeedURL, logger)
		refresh := func(ctx context.Context) error {
			return service.RefreshRate(ctx, feed, rates, logger)
		}
		if err := jobs.Add(cfg.RateRefreshSpec, "reference-rate", refresh); err != nil {
			logger.Fatalf("Failed to schedule rate refresh: %v", err)
		}
		jobs.RunNow("reference-rate", refresh)
	}
	jobs.Start()
	defer jobs.Stop()

	// Initialize layers
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(catalog, policy, cities, rates, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	h.Routes(r, cfg)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.RequestLogger(logger)(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
