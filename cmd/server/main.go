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

	financeapp "github.com/dukadash/backend/internal/application/finance"
	identityapp "github.com/dukadash/backend/internal/application/identity"
	inventoryapp "github.com/dukadash/backend/internal/application/inventory"
	reportapp "github.com/dukadash/backend/internal/application/report"
	salesapp "github.com/dukadash/backend/internal/application/sales"
	shopapp "github.com/dukadash/backend/internal/application/shop"
	"github.com/dukadash/backend/internal/infrastructure/auth"
	"github.com/dukadash/backend/internal/infrastructure/config"
	"github.com/dukadash/backend/internal/infrastructure/logger"
	"github.com/dukadash/backend/internal/infrastructure/notification"
	"github.com/dukadash/backend/internal/infrastructure/persistence"
	"github.com/dukadash/backend/internal/infrastructure/printing"
	"github.com/dukadash/backend/internal/infrastructure/storage"
	"github.com/dukadash/backend/internal/interfaces/http/handler"
	"github.com/dukadash/backend/internal/interfaces/http/middleware"
	"github.com/dukadash/backend/internal/interfaces/http/router"
)

// version is stamped at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
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
		_ = logger.Sync(log)
	}()

	log.Info("starting dukadash backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	twoFactorRepo := persistence.NewGormTwoFactorRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	historyRepo := persistence.NewGormStockHistoryRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	reportFileRepo := persistence.NewGormReportFileRepository(db.DB)
	aggregateRepo := persistence.NewGormAggregateRepository(db.DB)

	// Auth plumbing
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist, closeBlacklist := newTokenBlacklist(cfg, log)
	defer closeBlacklist()
	codeSender := notification.NewLogCodeSender(log)

	// Report plumbing
	reportStorage, err := newReportStorage(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize report storage", zap.Error(err))
	}
	renderer := printing.NewChromeRenderer(printing.Config{
		RemoteURL: cfg.Printing.ChromeRemoteURL,
		Timeout:   cfg.Printing.RenderTimeout,
		NoSandbox: cfg.Printing.NoSandbox,
	}, log)
	defer renderer.Close()

	// Application services
	authService := identityapp.NewAuthService(userRepo, settingsRepo, twoFactorRepo,
		shopRepo, jwtService, blacklist, codeSender)
	settingsService := identityapp.NewSettingsService(settingsRepo)
	twoFactorService := identityapp.NewTwoFactorService(userRepo, twoFactorRepo, codeSender)
	shopService := shopapp.NewShopService(shopRepo)
	stockService := inventoryapp.NewStockService(stockRepo, historyRepo, shopRepo,
		persistence.NewGormStockTransactionScope(db.DB))
	saleService := salesapp.NewSaleService(saleRepo, shopRepo,
		persistence.NewGormSaleTransactionScope(db.DB))
	expenseService := financeapp.NewExpenseService(expenseRepo, shopRepo)
	analyticsService := reportapp.NewAnalyticsService(aggregateRepo)
	exportService := reportapp.NewExportService(analyticsService, reportFileRepo,
		renderer, reportStorage, "")

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.Blacklist = blacklist
	jwtCfg.Logger = log

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.JWTAuth(jwtCfg),
	)

	systemHandler := handler.NewSystemHandler(db.DB, version)
	engine.GET("/health", systemHandler.Health)

	// 10 credential attempts per IP per minute
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	router.New(engine).Register(
		handler.NewAuthHandler(authService, authLimiter),
		handler.NewSettingsHandler(settingsService),
		handler.NewSecurityHandler(twoFactorService),
		handler.NewShopHandler(shopService),
		handler.NewStockHandler(stockService, saleService),
		handler.NewSaleHandler(saleService),
		handler.NewExpenseHandler(expenseService),
		handler.NewAnalyticsHandler(analyticsService),
		handler.NewReportHandler(exportService),
		systemHandler,
	).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newTokenBlacklist returns the Redis blacklist when Redis is
// configured, and an in-process one otherwise.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) (auth.TokenBlacklist, func()) {
	if cfg.Redis.Host == "" {
		log.Info("redis not configured, using in-memory token blacklist")
		return auth.NewInMemoryTokenBlacklist(), func() {}
	}

	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	return blacklist, func() {
		if err := blacklist.Close(); err != nil {
			log.Error("error closing redis blacklist", zap.Error(err))
		}
	}
}

// newReportStorage picks the object storage driver for generated
// report files.
func newReportStorage(cfg *config.Config, log *zap.Logger) (reportapp.Storage, error) {
	if cfg.Storage.Driver == "s3" {
		s3Storage, err := storage.NewS3Storage(&cfg.Storage, log)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3Storage, nil
	}

	dir := cfg.Storage.LocalDir
	if dir == "" {
		dir = "data/reports"
	}
	log.Info("using local report storage", zap.String("dir", dir))
	return storage.NewLocalStorage(dir)
}
