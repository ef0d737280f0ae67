package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonechef/backend/internal/service"
	"github.com/tonechef/backend/internal/types"
)

// ExportHandler converts generated recipes into downstream export formats
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// RegisterRoutes registers the export routes
func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/export/wprm", h.ExportWPRM)
}

// ExportWPRM handles POST /export/wprm. The submitted recipe must satisfy
// the same schema the generation pipeline enforces.
func (h *ExportHandler) ExportWPRM(c *gin.Context) {
	var req types.ExportWPRMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Recipe.Name == "" || len(req.Recipe.Ingredients) == 0 || len(req.Recipe.Instructions) == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "recipe must have a name, ingredients and instructions"})
		return
	}

	c.JSON(http.StatusOK, service.ExportWPRM(&req.Recipe))
}
