package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communiteer/welcomehub/internal/app/models/dto"
)

// HealthController answers liveness probes
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports that the process is serving
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
