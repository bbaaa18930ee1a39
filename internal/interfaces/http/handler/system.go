package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gescom/backend/internal/infrastructure/persistence"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// SystemHandler exposes health and readiness probes
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok"})
}

// Ready handles GET /ready, checking database connectivity
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.ErrCodeInternal, "Database unavailable", getRequestID(c)))
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
