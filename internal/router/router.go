package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonechef/backend/config"
	"github.com/tonechef/backend/internal/api"
	"github.com/tonechef/backend/internal/middleware"
	"github.com/tonechef/backend/internal/observability"
	"github.com/tonechef/backend/internal/ratelimit"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	generateHandler *api.GenerateHandler,
	exportHandler *api.ExportHandler,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	router.GET("/health", api.Health(cfg))
	router.GET("/metrics", observability.MetricsHandler())

	v1 := router.Group("/api/v1")
	{
		generateHandler.RegisterRoutes(v1, ratelimit.Middleware(limiter, logger))
		exportHandler.RegisterRoutes(v1)
	}

	return router
}
