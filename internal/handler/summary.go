package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/filter"
	"oddsdesk/internal/insight"
	"oddsdesk/internal/repository"
)

// summaryFetchLimit bounds how many filtered rows feed one summary. The
// verdict counts buckets, so a generous cap loses nothing in practice.
const summaryFetchLimit = 1000

type SummaryHandler struct {
	Repo       repository.Repository
	Thresholds insight.SummaryThresholds
}

func (h *SummaryHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/summary", h.getSummary)
}

// @Summary Operator verdict for the current filtered view
// @Tags summary
// @Param signal_type query string false "signal type or ALL"
// @Param market query string false "market or ALL"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/summary [get]
func (h *SummaryHandler) getSummary(c *gin.Context) {
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
		Ok(c, insight.Summarize(nil, nil, h.Thresholds), map[string]any{"generation": nil})
		return
	}

	state := filter.DecodeQuery(c.Request.URL.Query())
	params := listParams(gen.ID, state)
	params.Limit = summaryFetchLimit

	opps, err := h.Repo.ListOpportunities(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	weekly, err := h.Repo.GetWeeklySummary(c.Request.Context(), gen.ID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	summary := insight.Summarize(opps, weekly, h.Thresholds)
	Ok(c, summary, map[string]any{"generation": gen.ID, "fetched_at": gen.FetchedAt})
}
