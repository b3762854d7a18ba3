package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/client/scoring"
	"oddsdesk/internal/repository"
	"oddsdesk/internal/service"
)

type RefreshHandler struct {
	Repo    repository.Repository
	Service *service.RefreshService
	Query   scoring.Query
}

func (h *RefreshHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/status", h.getStatus)
	r.POST("/api/v1/refresh", h.triggerRefresh)
}

// @Summary Snapshot status: latest generation and the last refresh error
// @Tags refresh
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/status [get]
func (h *RefreshHandler) getStatus(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	gen, err := h.Repo.LatestGeneration(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	lastErr := ""
	if h.Service != nil {
		lastErr = h.Service.LastError()
	}
	Ok(c, map[string]any{
		"generation": gen,
		"last_error": lastErr,
	}, nil)
}

// @Summary Run one refresh cycle now
// @Tags refresh
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/refresh [post]
func (h *RefreshHandler) triggerRefresh(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "refresh unavailable", nil)
		return
	}
	q := h.Query
	if days := intQuery(c, "days", 0); days > 0 {
		q.Days = days
	}
	if sport := c.Query("sport_key"); sport != "" {
		q.SportKey = sport
	}
	gen, err := h.Service.Refresh(c.Request.Context(), q)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gen, nil)
}
