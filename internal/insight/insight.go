package insight

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"oddsdesk/internal/models"
	"oddsdesk/internal/ranking"
)

// OpportunityInsight is the deterministic guidance pair for one ranked row.
type OpportunityInsight struct {
	WhatChanged string `json:"what_changed"`
	NextStep    string `json:"next_step"`
}

// QualityInsight explains what the alert pipeline did with a signal.
type QualityInsight struct {
	Decision string `json:"decision"`
	Action   string `json:"action"`
}

// BuildOpportunityInsight synthesizes the what-changed and next-step strings
// for a record. Branch order is fixed and first match wins: actionable+fresh
// must be decided before the generic staleness check so an actionable-but-
// stale record is never presented as immediately actionable.
func BuildOpportunityInsight(rec *models.OpportunityRecord) OpportunityInsight {
	var next string
	switch {
	case rec.OpportunityStatus == models.StatusActionable && rec.FreshnessBucket == ranking.BucketFresh:
		next = "act now, compare top books immediately."
	case rec.FreshnessBucket == ranking.BucketStale || rec.OpportunityStatus == models.StatusStale:
		next = "refresh first; edge may be gone."
	default:
		next = "monitor; confirm freshness before acting."
	}
	return OpportunityInsight{
		WhatChanged: describeMove(rec),
		NextStep:    next,
	}
}

// BuildQualityInsight explains the alert decision for a quality row.
func BuildQualityInsight(row *models.QualityRow) QualityInsight {
	if row.AlertDecision == models.AlertDecisionSent {
		return QualityInsight{
			Decision: "Passed alert rules and was sent",
			Action:   "open game detail to compare current quotes",
		}
	}
	return QualityInsight{
		Decision: fmt.Sprintf("Filtered by alert rules (%s)", row.AlertReason),
		Action:   "adjust filters or alert rules if this should be included",
	}
}

func describeMove(rec *models.OpportunityRecord) string {
	unit := "line points"
	if rec.DeltaType == "implied_prob" {
		unit = "implied-probability points"
	}
	return fmt.Sprintf("%s moved %.3f %s: best %s vs consensus %s",
		rec.BestBook,
		math.Abs(rec.BestDelta),
		unit,
		formatQuote(rec.BestLine, rec.BestPrice),
		formatQuote(rec.ConsensusLine, rec.ConsensusPrice),
	)
}

// formatQuote renders "line (american_price)" when a line exists, otherwise
// the price alone, otherwise "-".
func formatQuote(line *decimal.Decimal, price *int) string {
	if line != nil {
		if price != nil {
			return fmt.Sprintf("%s (%+d)", line.String(), *price)
		}
		return line.String()
	}
	if price != nil {
		return fmt.Sprintf("%+d", *price)
	}
	return "-"
}
