package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type HealthHandler struct {
	svc *service.HealthService
}

func NewHealthHandler(svc *service.HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Check())
}

// Ready reports whether the payments API answers its status endpoint.
func (h *HealthHandler) Ready(c *gin.Context) {
	upstream, err := h.svc.IntegrationStatus(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"upstream": upstream,
	})
}
