package ranking

import (
	"math"

	"oddsdesk/internal/models"
)

// Edge labels for the resolved edge representation.
const (
	EdgeLabelLine = "line"
	EdgeLabelProb = "prob"
)

// Width classes for a market quote spread.
const (
	WidthTight    = "tight"
	WidthBalanced = "balanced"
	WidthWide     = "wide"
	WidthNA       = "n/a"
)

// Width thresholds per market family. Probability-denominated (h2h) and
// point-denominated (spreads, totals) markets have incompatible units, so
// each family carries its own tight/wide cutoffs. Boundaries are inclusive
// on the tight/wide side.
const (
	h2hTightMax   = 0.02
	h2hWideMin    = 0.05
	pointTightMax = 1.0
	pointWideMin  = 2.5
)

// ResolvedScore is the single authoritative ranking value for a record.
type ResolvedScore struct {
	Value float64 `json:"value"`
	Basis string  `json:"basis"`
}

// ResolvedEdge is the effective edge value with its unit label. Value is nil
// when neither edge representation is present.
type ResolvedEdge struct {
	Value *float64 `json:"value"`
	Label string   `json:"label"`
}

// ResolveRanking selects the effective ranking value with a fixed priority:
// ranking_score over opportunity_score. It never recomputes anything; the
// upstream scorer already did the math. The basis label is "blended" only
// when ranking_score was used and upstream explicitly said so.
func ResolveRanking(rec *models.OpportunityRecord) ResolvedScore {
	if rec.RankingScore != nil && isFinite(*rec.RankingScore) {
		basis := models.ScoreBasisOpportunity
		if rec.ScoreBasis != nil && *rec.ScoreBasis == models.ScoreBasisBlended {
			basis = models.ScoreBasisBlended
		}
		return ResolvedScore{Value: *rec.RankingScore, Basis: basis}
	}
	return ResolvedScore{Value: rec.OpportunityScore, Basis: models.ScoreBasisOpportunity}
}

// ResolveEdge honors the line-over-prob priority. The two fields are mutually
// exclusive by upstream contract; the resolver does not validate that, it
// just picks in order. Both absent resolves to a nil value with the zero
// label "line".
func ResolveEdge(rec *models.OpportunityRecord) ResolvedEdge {
	if rec.BestEdgeLine != nil {
		return ResolvedEdge{Value: rec.BestEdgeLine, Label: EdgeLabelLine}
	}
	if rec.BestEdgeProb != nil {
		return ResolvedEdge{Value: rec.BestEdgeProb, Label: EdgeLabelProb}
	}
	return ResolvedEdge{Value: nil, Label: EdgeLabelLine}
}

// ClassifyWidth buckets a market width into tight/balanced/wide using the
// market family's thresholds, or "n/a" when the width is unknown.
func ClassifyWidth(market string, width *float64) string {
	if width == nil {
		return WidthNA
	}
	tightMax, wideMin := pointTightMax, pointWideMin
	if market == "h2h" {
		tightMax, wideMin = h2hTightMax, h2hWideMin
	}
	switch {
	case *width <= tightMax:
		return WidthTight
	case *width >= wideMin:
		return WidthWide
	default:
		return WidthBalanced
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
