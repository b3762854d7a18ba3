package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Score basis labels assigned by the upstream scoring service.
const (
	ScoreBasisOpportunity = "opportunity"
	ScoreBasisBlended     = "blended"
)

// Opportunity lifecycle statuses assigned upstream.
const (
	StatusActionable = "actionable"
	StatusMonitor    = "monitor"
	StatusStale      = "stale"
)

// OpportunityRecord is one ranked signal/event/market/outcome row as returned
// by the scoring API. Rows are immutable snapshots: each refresh replaces the
// whole generation, nothing is mutated field by field.
//
// Optional score fields are pointers; at most one of BestEdgeLine and
// BestEdgeProb is populated by upstream contract.
type OpportunityRecord struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	GenerationID uint64 `gorm:"not null;index" json:"-"`

	SignalID    string `gorm:"type:varchar(100);not null;index" json:"signal_id"`
	SignalType  string `gorm:"type:varchar(50);index" json:"signal_type"`
	EventID     string `gorm:"type:varchar(100);not null;index" json:"event_id"`
	SportKey    string `gorm:"type:varchar(50);index" json:"sport_key"`
	Market      string `gorm:"type:varchar(30);not null;index" json:"market"`
	OutcomeName string `gorm:"type:varchar(200)" json:"outcome_name"`

	StrengthScore float64 `gorm:"not null" json:"strength_score"`
	ExecutionRank float64 `gorm:"not null" json:"execution_rank"`

	BestBook       string           `gorm:"type:varchar(50)" json:"best_book"`
	BestLine       *decimal.Decimal `gorm:"type:numeric(20,10)" json:"best_line"`
	BestPrice      *int             `json:"best_price"`
	ConsensusLine  *decimal.Decimal `gorm:"type:numeric(20,10)" json:"consensus_line"`
	ConsensusPrice *int             `json:"consensus_price"`
	BestDelta      float64          `gorm:"not null" json:"best_delta"`
	DeltaType      string           `gorm:"type:varchar(20)" json:"delta_type"`

	BestEdgeLine *float64 `json:"best_edge_line"`
	BestEdgeProb *float64 `json:"best_edge_prob"`
	MarketWidth  *float64 `json:"market_width"`

	FreshnessSeconds *int   `json:"freshness_seconds"`
	FreshnessBucket  string `gorm:"type:varchar(10);index" json:"freshness_bucket"`
	BooksConsidered  int    `gorm:"not null" json:"books_considered"`

	CLVPriorSamples     *int     `json:"clv_prior_samples"`
	CLVPriorPctPositive *float64 `json:"clv_prior_pct_positive"`

	OpportunityScore float64  `gorm:"not null" json:"opportunity_score"`
	ContextScore     *float64 `json:"context_score"`
	BlendedScore     *float64 `json:"blended_score"`
	RankingScore     *float64 `json:"ranking_score"`
	ScoreBasis       *string  `gorm:"type:varchar(20)" json:"score_basis"`

	OpportunityStatus string         `gorm:"type:varchar(20);not null;index" json:"opportunity_status"`
	ReasonTags        datatypes.JSON `gorm:"type:jsonb" json:"reason_tags"`
	ScoreSummary      string         `gorm:"type:text" json:"score_summary"`

	CreatedAt time.Time `gorm:"type:timestamptz;index" json:"created_at"`
}

func (OpportunityRecord) TableName() string {
	return "opportunity_records"
}
