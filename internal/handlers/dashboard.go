package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	stats, err := h.Dashboard.Stats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
