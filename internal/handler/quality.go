package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/insight"
	"oddsdesk/internal/models"
	"oddsdesk/internal/repository"
)

type qualityView struct {
	models.QualityRow

	Insight insight.QualityInsight `json:"insight"`
}

type QualityHandler struct {
	Repo repository.Repository
}

func (h *QualityHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/quality")
	group.GET("", h.listQualityRows)
	group.GET("/weekly", h.getWeeklySummary)
}

// @Summary List per-signal alert quality rows for the latest generation
// @Tags quality
// @Param decision query string false "sent or hidden"
// @Param signal_type query string false "signal type"
// @Param min_strength query number false "minimum strength score"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/quality [get]
func (h *QualityHandler) listQualityRows(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	gen, err := h.Repo.LatestGeneration(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if gen == nil {
		Ok(c, []qualityView{}, map[string]any{"generation": nil})
		return
	}

	params := repository.ListQualityRowsParams{
		GenerationID:  gen.ID,
		SignalType:    strQueryPtr(c, "signal_type"),
		Market:        strQueryPtr(c, "market"),
		Decision:      strQueryPtr(c, "decision"),
		MinStrength:   floatQueryPtr(c, "min_strength"),
		MinBooks:      intQueryPtr(c, "min_books"),
		MaxDispersion: floatQueryPtr(c, "max_dispersion"),
		Limit:         intQuery(c, "limit", 100),
		Offset:        intQuery(c, "offset", 0),
	}
	items, err := h.Repo.ListQualityRows(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	views := make([]qualityView, 0, len(items))
	for i := range items {
		views = append(views, qualityView{
			QualityRow: items[i],
			Insight:    insight.BuildQualityInsight(&items[i]),
		})
	}
	Ok(c, views, map[string]any{"generation": gen.ID, "fetched_at": gen.FetchedAt})
}

// @Summary Weekly alert quality summary for the latest generation
// @Tags quality
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/quality/weekly [get]
func (h *QualityHandler) getWeeklySummary(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	gen, err := h.Repo.LatestGeneration(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if gen == nil {
		Ok(c, nil, map[string]any{"generation": nil})
		return
	}
	weekly, err := h.Repo.GetWeeklySummary(c.Request.Context(), gen.ID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, weekly, map[string]any{"generation": gen.ID})
}
