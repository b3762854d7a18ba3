package models

import "time"

// Alert pipeline decisions and lifecycle stages assigned upstream.
const (
	AlertDecisionSent   = "sent"
	AlertDecisionHidden = "hidden"

	LifecycleSent     = "sent"
	LifecycleFiltered = "filtered"
	LifecycleStale    = "stale"
	LifecycleEligible = "eligible"
)

// QualityRow is one per-signal quality audit row: what the alert pipeline did
// with a signal and why.
type QualityRow struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	GenerationID uint64 `gorm:"not null;index" json:"-"`

	SignalID   string `gorm:"type:varchar(100);not null;index" json:"signal_id"`
	SignalType string `gorm:"type:varchar(50);index" json:"signal_type"`
	Market     string `gorm:"type:varchar(30)" json:"market"`

	StrengthScore float64  `gorm:"not null" json:"strength_score"`
	BooksAffected int      `gorm:"not null" json:"books_affected"`
	Dispersion    *float64 `json:"dispersion"`

	AlertDecision   string `gorm:"type:varchar(10);not null;index" json:"alert_decision"`
	AlertReason     string `gorm:"type:varchar(200)" json:"alert_reason"`
	LifecycleStage  string `gorm:"type:varchar(10);not null" json:"lifecycle_stage"`
	LifecycleReason string `gorm:"type:varchar(200)" json:"lifecycle_reason"`

	CreatedAt time.Time `gorm:"type:timestamptz;index" json:"created_at"`
}

func (QualityRow) TableName() string {
	return "quality_rows"
}

// WeeklyQualitySummary aggregates alert quality over a rolling window.
type WeeklyQualitySummary struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	GenerationID uint64 `gorm:"not null;uniqueIndex" json:"-"`

	SentRatePct     float64  `gorm:"not null" json:"sent_rate_pct"`
	CLVPctPositive  float64  `gorm:"not null" json:"clv_pct_positive"`
	CLVSamples      int      `gorm:"not null" json:"clv_samples"`
	AvgStrength     *float64 `json:"avg_strength"`
	EligibleSignals int      `gorm:"not null" json:"eligible_signals"`
	HiddenSignals   int      `gorm:"not null" json:"hidden_signals"`
	TopHiddenReason *string  `gorm:"type:varchar(200)" json:"top_hidden_reason"`

	WindowDays int       `gorm:"not null" json:"window_days"`
	CreatedAt  time.Time `gorm:"type:timestamptz" json:"created_at"`
}

func (WeeklyQualitySummary) TableName() string {
	return "weekly_quality_summaries"
}
