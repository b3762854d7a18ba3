package models

import "time"

// SignalScorecard is the per-signal detail card fetched in batches for the
// currently visible signal set. Not persisted; display-only.
type SignalScorecard struct {
	SignalID       string    `json:"signal_id"`
	SignalType     string    `json:"signal_type"`
	Market         string    `json:"market"`
	Samples        int       `json:"samples"`
	CLVPctPositive float64   `json:"clv_pct_positive"`
	AvgStrength    float64   `json:"avg_strength"`
	LastSeenAt     time.Time `json:"last_seen_at"`
}
