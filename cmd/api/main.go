package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/catalog"
	adapterHTTP "github.com/comitanigiacomo/strivefit-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/strivefit-engine/internal/config"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/logging"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
	"github.com/comitanigiacomo/strivefit-engine/migrations"
)

// @title StriveFit Engine API
// @version 1.0
// @description Fitness metrics, progress history, goals, attendance and diet plans.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warnf("close: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("StriveFit Engine running on http://localhost:%s (store: %s)", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Forced shutdown error: %v", err)
		return
	}

	log.Info("Server stopped gracefully.")
}

type app struct {
	router  *gin.Engine
	closers []func() error
}

// Close releases resources in reverse acquisition order.
func (a *app) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	return err
}

// newApp wires the store, cache, services and router described by cfg.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	startTime := time.Now()

	var (
		store  domain.RecordStore
		pinger adapterHTTP.Pinger
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.MigrateOnBoot {
			if err := migrations.Up(cfg.PostgresDSN()); err != nil {
				return nil, err
			}
			log.Info("Database migrations applied.")
		}

		log.Info("Connecting to database...")
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		a.closers = append(a.closers, db.Close)

		log.Info("Database connected successfully.")
		store = repository.NewPostgresStore(db, cfg.DBTimeout)
		pinger = db
	default:
		log.Warn("Using the in-memory record store; data is lost on restart.")
		store = repository.NewMemoryStore()
	}

	var rdb *redis.Client
	if cfg.RedisEnabled {
		client, err := cache.NewRedisClient(ctx, cache.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		rdb = client
		a.closers = append(a.closers, rdb.Close)
		store = repository.NewCachedStore(store, rdb, cfg.CacheTTL)
	}

	dietCatalog, err := loadCatalog(cfg.DietCatalogPath)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager(cfg.MetricsNamespace, "api", reg)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ProgressHandler:   adapterHTTP.NewProgressHandler(services.NewProgressService(store), metricsManager),
		GoalHandler:       adapterHTTP.NewGoalHandler(services.NewGoalService(store), metricsManager),
		AttendanceHandler: adapterHTTP.NewAttendanceHandler(services.NewAttendanceService(store), metricsManager),
		DietHandler:       adapterHTTP.NewDietHandler(services.NewDietService(dietCatalog)),
		TokenService:      services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		Metrics:           metricsManager,
		Registry:          reg,
		DB:                pinger,
		Redis:             rdb,
		RateLimit:         cfg.RateLimit,
		RateLimitWindow:   cfg.RateLimitWindow,
		StartTime:         startTime,
	})

	return a, nil
}

func loadCatalog(path string) (domain.DietCatalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	log.Infof("Loading diet catalog from %s", path)
	return catalog.LoadFile(path)
}
