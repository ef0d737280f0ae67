package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonechef/backend/config"
)

// Health returns a liveness handler echoing non-sensitive configuration
func Health(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "ok",
			"environment":        string(config.GetEnvironment()),
			"model":              cfg.ProviderModel,
			"rate_limit_backend": cfg.RateLimitBackend,
		})
	}
}
