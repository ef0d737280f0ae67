package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonechef/backend/internal/middleware"
	"github.com/tonechef/backend/internal/observability"
	"github.com/tonechef/backend/internal/service"
	"github.com/tonechef/backend/internal/types"
)

// statusClientClosedRequest is the nginx convention for a request aborted by
// the client before the response was written.
const statusClientClosedRequest = 499

// GenerateHandler handles recipe generation requests
type GenerateHandler struct {
	service *service.GenerationService
	logger  *zap.Logger
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generationService *service.GenerationService, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: generationService,
		logger:  logger,
	}
}

// RegisterRoutes registers the generation routes. The rate limiter guards
// only the generation endpoint; the tone catalogue is free.
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	router.POST("/generate", rateLimit, h.Generate)
	router.GET("/tones", h.ListTones)
}

// Generate handles POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		observability.GenerationRequests.WithLabelValues(observability.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	start := time.Now()
	recipe, err := h.service.Generate(c.Request.Context(), &req)
	observability.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.writeError(c, err)
		return
	}

	observability.GenerationRequests.WithLabelValues(observability.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, recipe)
}

// ListTones handles GET /tones
func (h *GenerateHandler) ListTones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tones": service.Tones()})
}

// writeError maps a pipeline error to its HTTP status. Only summarized
// messages cross the boundary; diagnostic detail stays in the log.
func (h *GenerateHandler) writeError(c *gin.Context, err error) {
	requestID, _ := c.Get(middleware.RequestIDKey)

	switch {
	case errors.Is(err, service.ErrEmptyInput), errors.Is(err, service.ErrInputTooLarge):
		observability.GenerationRequests.WithLabelValues(observability.OutcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})

	case errors.Is(err, context.Canceled):
		// The client is gone; nothing useful can be written.
		observability.GenerationRequests.WithLabelValues(observability.OutcomeCancelled).Inc()
		h.logger.Debug("generation cancelled by client",
			zap.Any("request_id", requestID))
		c.AbortWithStatus(statusClientClosedRequest)

	default:
		var formatErr *service.FormatError
		if errors.As(err, &formatErr) {
			observability.GenerationRequests.WithLabelValues(observability.OutcomeInvalidFormat).Inc()
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error: "model returned an invalid recipe: " + formatErr.Error(),
			})
			return
		}

		observability.GenerationRequests.WithLabelValues(observability.OutcomeUpstreamError).Inc()
		h.logger.Error("recipe generation failed",
			zap.Any("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to generate recipe"})
	}
}
