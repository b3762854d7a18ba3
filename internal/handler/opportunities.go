package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/filter"
	"oddsdesk/internal/insight"
	"oddsdesk/internal/models"
	"oddsdesk/internal/ranking"
	"oddsdesk/internal/repository"
)

// opportunityView is one ranked row plus the resolved display fields the UI
// renders without doing any math of its own.
type opportunityView struct {
	models.OpportunityRecord

	Ranking          ranking.ResolvedScore      `json:"ranking"`
	Edge             ranking.ResolvedEdge       `json:"edge"`
	WidthClass       string                     `json:"width_class"`
	FreshnessMinutes string                     `json:"freshness_minutes"`
	Insight          insight.OpportunityInsight `json:"insight"`
}

type OpportunityHandler struct {
	Repo repository.Repository
}

func (h *OpportunityHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/opportunities")
	group.GET("", h.listOpportunities)
}

// @Summary List ranked opportunities for the latest snapshot generation
// @Tags opportunities
// @Param signal_type query string false "signal type or ALL"
// @Param market query string false "market or ALL"
// @Param min_strength query number false "minimum strength score"
// @Param include_stale query bool false "include stale rows"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/opportunities [get]
func (h *OpportunityHandler) listOpportunities(c *gin.Context) {
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
		Ok(c, []opportunityView{}, map[string]any{"generation": nil})
		return
	}

	// The query string is the URL mirror of the filter state; decode recovers
	// malformed values field by field instead of rejecting the request.
	state := filter.DecodeQuery(c.Request.URL.Query())
	params := listParams(gen.ID, state)

	orderBy := parseOrder(c.Query("sort_by"), map[string]string{
		"execution_rank":    "execution_rank",
		"strength":          "strength_score",
		"opportunity_score": "opportunity_score",
		"freshness":         "freshness_seconds",
		"created_at":        "created_at",
	})
	params.OrderBy = orderBy
	if c.Query("order") == "asc" {
		params.Asc = boolPtr(true)
	}
	params.Limit = intQuery(c, "limit", 100)
	params.Offset = intQuery(c, "offset", 0)

	items, err := h.Repo.ListOpportunities(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountOpportunities(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	views := make([]opportunityView, 0, len(items))
	for i := range items {
		views = append(views, buildOpportunityView(&items[i]))
	}

	meta := paginationMeta(params.Limit, params.Offset, total)
	meta["generation"] = gen.ID
	meta["fetched_at"] = gen.FetchedAt
	Ok(c, views, meta)
}

func buildOpportunityView(rec *models.OpportunityRecord) opportunityView {
	return opportunityView{
		OpportunityRecord: *rec,
		Ranking:           ranking.ResolveRanking(rec),
		Edge:              ranking.ResolveEdge(rec),
		WidthClass:        ranking.ClassifyWidth(rec.Market, rec.MarketWidth),
		FreshnessMinutes:  ranking.DisplayMinutes(rec.FreshnessSeconds),
		Insight:           insight.BuildOpportunityInsight(rec),
	}
}

// listParams maps a filter state onto repository constraints. ALL and zero
// thresholds translate to "no constraint".
func listParams(generationID uint64, state models.FilterState) repository.ListOpportunitiesParams {
	params := repository.ListOpportunitiesParams{
		GenerationID: generationID,
		IncludeStale: state.IncludeStale,
	}
	if state.SignalType != "" && state.SignalType != models.FilterAll {
		params.SignalType = &state.SignalType
	}
	if state.Market != "" && state.Market != models.FilterAll {
		params.Market = &state.Market
	}
	if state.MinStrength > 0 {
		params.MinStrength = &state.MinStrength
	}
	if state.MinSamples > 0 {
		params.MinSamples = &state.MinSamples
	}
	if state.MinBooksAffected > 0 {
		params.MinBooksAffected = &state.MinBooksAffected
	}
	params.WindowMinutesMax = state.WindowMinutesMax
	params.MinEdge = state.MinEdge
	params.MaxWidth = state.MaxWidth
	return params
}
