package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/strivefit-engine/docs"
	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
)

// Pinger is satisfied by *sqlx.DB; nil means the store has no remote backend.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterDependencies struct {
	ProgressHandler   *ProgressHandler
	GoalHandler       *GoalHandler
	AttendanceHandler *AttendanceHandler
	DietHandler       *DietHandler
	TokenService      *services.TokenService
	Metrics           *metrics.Manager
	Registry          prometheus.Gatherer
	DB                Pinger
	Redis             *redis.Client
	RateLimit         int
	RateLimitWindow   time.Duration
	StartTime         time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	if deps.Redis != nil && deps.RateLimit > 0 {
		var limited prometheus.Counter
		if deps.Metrics != nil {
			limited = deps.Metrics.CounterRateLimitedRequests
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateLimitWindow, limited))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "in-memory"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		status, code := "ok", http.StatusOK
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.ProgressHandler.RegisterRoutes(apiV1)
		deps.GoalHandler.RegisterRoutes(apiV1)
		deps.AttendanceHandler.RegisterRoutes(apiV1)
		deps.DietHandler.RegisterRoutes(apiV1)
	}

	return router
}
