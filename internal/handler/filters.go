package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oddsdesk/internal/filter"
	"oddsdesk/internal/models"
)

type FilterHandler struct {
	Store *filter.Store
}

func (h *FilterHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/filters")
	group.GET("/resolve", h.resolveQuery)
	group.GET("/presets", h.listPresets)
	group.GET("/:view", h.getState)
	group.PUT("/:view", h.putState)
	group.POST("/:view/preset", h.applyPreset)
	group.GET("/:view/share", h.shareURL)
}

func viewParam(c *gin.Context) string {
	view := strings.TrimSpace(c.Param("view"))
	if view == "" {
		view = "main"
	}
	return view
}

// @Summary Get the persisted filter state for a view
// @Tags filters
// @Param view path string true "view name"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/{view} [get]
func (h *FilterHandler) getState(c *gin.Context) {
	state, err := h.Store.Load(c.Request.Context(), viewParam(c))
	if err != nil {
		// Defaults still render a usable view when redis is down.
		Ok(c, state, map[string]any{"degraded": true})
		return
	}
	Ok(c, state, nil)
}

// @Summary Replace the persisted filter state for a view
// @Tags filters
// @Param view path string true "view name"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/{view} [put]
func (h *FilterHandler) putState(c *gin.Context) {
	var state models.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		Error(c, http.StatusBadRequest, "invalid filter state: "+err.Error(), nil)
		return
	}
	state = filter.Sanitize(state)
	if err := h.Store.Save(c.Request.Context(), viewParam(c), state); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, state, nil)
}

type applyPresetRequest struct {
	Key string `json:"key" binding:"required"`
}

// @Summary Apply a named preset (or CUSTOM) to a view's filter state
// @Tags filters
// @Param view path string true "view name"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/{view}/preset [post]
func (h *FilterHandler) applyPreset(c *gin.Context) {
	var req applyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request: "+err.Error(), nil)
		return
	}
	if !filter.IsPresetKey(req.Key) {
		Error(c, http.StatusBadRequest, "unknown preset: "+req.Key, nil)
		return
	}
	view := viewParam(c)
	state, err := h.Store.Load(c.Request.Context(), view)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	state = filter.ApplyPreset(state, req.Key)
	if err := h.Store.Save(c.Request.Context(), view, state); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, state, nil)
}

// @Summary List the named preset keys
// @Tags filters
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/presets [get]
func (h *FilterHandler) listPresets(c *gin.Context) {
	Ok(c, filter.PresetKeys(), nil)
}

// @Summary Encode a view's filter state as a shareable query string
// @Tags filters
// @Param view path string true "view name"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/{view}/share [get]
func (h *FilterHandler) shareURL(c *gin.Context) {
	state, err := h.Store.Load(c.Request.Context(), viewParam(c))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, map[string]any{"query": filter.EncodeQuery(state).Encode()}, nil)
}

// @Summary Decode a shared query string back into a filter state
// @Tags filters
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/filters/resolve [get]
func (h *FilterHandler) resolveQuery(c *gin.Context) {
	Ok(c, filter.DecodeQuery(c.Request.URL.Query()), nil)
}
