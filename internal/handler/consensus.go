package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/service"
)

type ConsensusHandler struct {
	Cache   *service.ConsensusCache
	Details *service.DetailBatchFetcher
}

func (h *ConsensusHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/consensus", h.getConsensus)
	group := r.Group("/api/v1/scorecards")
	group.GET("", h.getScorecards)
	group.POST("/refresh", h.refreshScorecards)
}

// @Summary Live consensus display values with flash markers
// @Tags consensus
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/consensus [get]
func (h *ConsensusHandler) getConsensus(c *gin.Context) {
	Ok(c, h.Cache.Snapshot(), nil)
}

// @Summary Scorecards of the newest applied detail batch
// @Tags consensus
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/scorecards [get]
func (h *ConsensusHandler) getScorecards(c *gin.Context) {
	Ok(c, h.Details.Cards(), nil)
}

type refreshScorecardsRequest struct {
	SignalIDs []string `json:"signal_ids" binding:"required"`
}

// @Summary Start a scorecard batch for the visible signal set
// @Tags consensus
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/scorecards/refresh [post]
func (h *ConsensusHandler) refreshScorecards(c *gin.Context) {
	if h.Details == nil {
		Error(c, http.StatusInternalServerError, "detail fetcher unavailable", nil)
		return
	}
	var req refreshScorecardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request: "+err.Error(), nil)
		return
	}
	// The batch outlives this request; a later request supersedes it.
	h.Details.Refresh(context.Background(), req.SignalIDs)
	Ok(c, map[string]any{"requested": len(req.SignalIDs)}, nil)
}
