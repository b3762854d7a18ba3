package filter

import (
	"net/url"
	"strconv"

	"oddsdesk/internal/models"
)

// Field bounds used when recovering malformed persisted state. Out-of-range
// values clamp; wrong-typed values are discarded and the default kept. None
// of this surfaces as a user-visible error.
const (
	minStrengthMax      = 100
	minSamplesMax       = 10000
	minBooksAffectedMax = 100
	maxDispersionMax    = 10
	windowMinutesMaxCap = 10080 // one week
	minEdgeMax          = 100
	maxWidthMax         = 50
)

// EncodeQuery mirrors a FilterState into URL query parameters using the
// snake_case wire names. Unset nullable fields are omitted so the round trip
// is lossless.
func EncodeQuery(state models.FilterState) url.Values {
	q := url.Values{}
	q.Set("signal_type", state.SignalType)
	q.Set("market", state.Market)
	q.Set("min_strength", strconv.FormatFloat(state.MinStrength, 'f', -1, 64))
	q.Set("min_samples", strconv.Itoa(state.MinSamples))
	q.Set("min_books_affected", strconv.Itoa(state.MinBooksAffected))
	if state.MaxDispersion != nil {
		q.Set("max_dispersion", strconv.FormatFloat(*state.MaxDispersion, 'f', -1, 64))
	}
	if state.WindowMinutesMax != nil {
		q.Set("window_minutes_max", strconv.Itoa(*state.WindowMinutesMax))
	}
	if state.MinEdge != nil {
		q.Set("min_edge", strconv.FormatFloat(*state.MinEdge, 'f', -1, 64))
	}
	if state.MaxWidth != nil {
		q.Set("max_width", strconv.FormatFloat(*state.MaxWidth, 'f', -1, 64))
	}
	q.Set("include_stale", strconv.FormatBool(state.IncludeStale))
	q.Set("selected_preset", state.SelectedPreset)
	return q
}

// DecodeQuery parses the URL mirror back into a FilterState, starting from
// the defaults and recovering per field: malformed values keep the default,
// out-of-range values clamp.
func DecodeQuery(q url.Values) models.FilterState {
	state := DefaultState()
	if v := q.Get("signal_type"); v != "" {
		state.SignalType = v
	}
	if v := q.Get("market"); v != "" {
		state.Market = v
	}
	if f, ok := parseFloat(q.Get("min_strength")); ok {
		state.MinStrength = clampFloat(f, 0, minStrengthMax)
	}
	if n, ok := parseInt(q.Get("min_samples")); ok {
		state.MinSamples = clampInt(n, 0, minSamplesMax)
	}
	if n, ok := parseInt(q.Get("min_books_affected")); ok {
		state.MinBooksAffected = clampInt(n, 0, minBooksAffectedMax)
	}
	if f, ok := parseFloat(q.Get("max_dispersion")); ok {
		state.MaxDispersion = floatPtr(clampFloat(f, 0, maxDispersionMax))
	}
	if n, ok := parseInt(q.Get("window_minutes_max")); ok {
		state.WindowMinutesMax = intPtr(clampInt(n, 0, windowMinutesMaxCap))
	}
	if f, ok := parseFloat(q.Get("min_edge")); ok {
		state.MinEdge = floatPtr(clampFloat(f, 0, minEdgeMax))
	}
	if f, ok := parseFloat(q.Get("max_width")); ok {
		state.MaxWidth = floatPtr(clampFloat(f, 0, maxWidthMax))
	}
	if b, err := strconv.ParseBool(q.Get("include_stale")); err == nil {
		state.IncludeStale = b
	}
	if v := q.Get("selected_preset"); IsPresetKey(v) {
		state.SelectedPreset = v
	}
	return state
}

// Sanitize re-applies the per-field recovery rules to an in-memory state,
// used when reading a persisted JSON blob that may predate the current
// bounds. Unknown preset selectors fall back to CUSTOM.
func Sanitize(state models.FilterState) models.FilterState {
	if state.SignalType == "" {
		state.SignalType = models.FilterAll
	}
	if state.Market == "" {
		state.Market = models.FilterAll
	}
	state.MinStrength = clampFloat(state.MinStrength, 0, minStrengthMax)
	state.MinSamples = clampInt(state.MinSamples, 0, minSamplesMax)
	state.MinBooksAffected = clampInt(state.MinBooksAffected, 0, minBooksAffectedMax)
	if state.MaxDispersion != nil {
		state.MaxDispersion = floatPtr(clampFloat(*state.MaxDispersion, 0, maxDispersionMax))
	}
	if state.WindowMinutesMax != nil {
		state.WindowMinutesMax = intPtr(clampInt(*state.WindowMinutesMax, 0, windowMinutesMaxCap))
	}
	if state.MinEdge != nil {
		state.MinEdge = floatPtr(clampFloat(*state.MinEdge, 0, minEdgeMax))
	}
	if state.MaxWidth != nil {
		state.MaxWidth = floatPtr(clampFloat(*state.MaxWidth, 0, maxWidthMax))
	}
	if !IsPresetKey(state.SelectedPreset) {
		state.SelectedPreset = models.PresetCustom
	}
	return state
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
