package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	financeapp "github.com/storefront/backend/internal/application/finance"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/payment"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	// OTLP log bridge; the final logger tees into it when enabled
	logProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize log exporter", zap.Error(err))
	}

	log := bootLog
	if logProvider.IsEnabled() {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log, err = logger.New(logCfg, telemetry.NewZapOTELCore(cfg.Telemetry.ServiceName, logProvider, level))
		if err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database_driver", cfg.Database.Driver),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter", zap.Error(err))
	}
	meter := meterProvider.Meter(cfg.Telemetry.ServiceName)

	storeMetrics, err := telemetry.NewStoreMetrics(meter, log)
	if err != nil {
		log.Fatal("Failed to create store metrics", zap.Error(err))
	}
	httpMetrics, err := telemetry.NewHTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create HTTP metrics", zap.Error(err))
	}

	// Data store
	var (
		repos  *persistence.Repositories
		db     *persistence.Database
		pinger handler.Pinger
	)
	switch cfg.Database.Driver {
	case "memory":
		log.Warn("Using in-memory storage; data is lost on restart")
		repos = memory.NewRepositories()
	default:
		monitor, err := telemetry.NewDBMonitor(tracerProvider.Tracer("mongo"), meter, telemetry.DBMonitorConfig{}, log)
		if err != nil {
			log.Fatal("Failed to create database monitor", zap.Error(err))
		}
		db, err = persistence.NewDatabase(ctx, &cfg.Database, monitor.CommandMonitor())
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		log.Info("Database connected successfully", zap.String("database", cfg.Database.Name))
		repos = persistence.NewRepositories(db.DB)
		pinger = db
	}

	var gateway finance.PaymentGateway
	if cfg.Payment.Enabled() {
		adapter, err := payment.NewSSLCommerzAdapter(&payment.SSLCommerzConfig{
			StoreID:       cfg.Payment.StoreID,
			StorePassword: cfg.Payment.StorePassword,
			IsSandbox:     cfg.Payment.Sandbox,
			Currency:      cfg.Payment.Currency,
			Timeout:       cfg.Payment.Timeout,
		})
		if err != nil {
			log.Fatal("Failed to configure SSLCommerz", zap.Error(err))
		}
		gateway = adapter
		log.Info("SSLCommerz gateway enabled", zap.Bool("sandbox", cfg.Payment.Sandbox))
	} else {
		log.Warn("SSLCommerz credentials missing; payment endpoints will return 503")
	}

	var media catalogapp.MediaStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3MediaStorage(ctx, &cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to configure object storage", zap.Error(err))
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Warn("Could not verify image bucket", zap.String("bucket", s3.GetBucket()), zap.Error(err))
		}
		media = s3
	}

	rateStore, err := cache.NewRateLimitStore(ctx, cfg.HTTP, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to create rate limit store", zap.Error(err))
	}

	handlers := router.NewHandlers(router.APIDeps{
		Repos:   repos,
		Gateway: gateway,
		Payment: financeapp.PaymentServiceConfig{
			Currency:    cfg.Payment.Currency,
			ServerURL:   cfg.Payment.ServerURL,
			FrontendURL: cfg.Payment.FrontendURL,
		},
		Media:       media,
		MediaPrefix: cfg.Storage.KeyPrefix,
		Recorder:    storeMetrics,
		DB:          pinger,
		Driver:      cfg.Database.Driver,
		Logger:      log,
	})

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	cors := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(middleware.HTTPMetrics(httpMetrics))
	engine.Use(middleware.SecureWithConfig(middleware.DefaultSecurityConfig()))
	engine.Use(middleware.CORSWithConfig(cors))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(rateStore, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, log)
		engine.Use(middleware.RateLimit(limiter))
	}

	router.NewRouter(engine).Register(router.DomainGroups(handlers)...).Setup()

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := rateStore.Close(); err != nil {
		log.Error("Error closing rate limit store", zap.Error(err))
	}
	if db != nil {
		if err := db.Close(shutdownCtx); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		bootLog.Error("Error shutting down log provider", zap.Error(err))
	}

	log.Info("Server exited")
}
