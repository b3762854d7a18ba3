package models

// Preset keys understood by the filter engine. CUSTOM is the escape hatch:
// any direct threshold edit moves the state there.
const (
	PresetCustom         = "CUSTOM"
	PresetHighConfidence = "HIGH_CONFIDENCE"
	PresetLowNoise       = "LOW_NOISE"
	PresetEarlyMove      = "EARLY_MOVE"
	PresetSteamOnly      = "STEAM_ONLY"
)

// FilterAll is the unconstrained value for signalType/market.
const FilterAll = "ALL"

// FilterState is the view-owned filter bundle. JSON tags are the in-memory
// camelCase names; the URL query-string mirror uses snake_case (see
// internal/filter codec). Nil pointer means unset.
type FilterState struct {
	SignalType       string   `json:"signalType"`
	Market           string   `json:"market"`
	MinStrength      float64  `json:"minStrength"`
	MinSamples       int      `json:"minSamples"`
	MinBooksAffected int      `json:"minBooksAffected"`
	MaxDispersion    *float64 `json:"maxDispersion"`
	WindowMinutesMax *int     `json:"windowMinutesMax"`
	MinEdge          *float64 `json:"minEdge"`
	MaxWidth         *float64 `json:"maxWidth"`
	IncludeStale     bool     `json:"includeStale"`
	SelectedPreset   string   `json:"selectedPreset"`
}
