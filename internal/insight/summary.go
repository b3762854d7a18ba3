package insight

import (
	"fmt"
	"strings"

	"oddsdesk/internal/models"
	"oddsdesk/internal/ranking"
)

// Operator summary tones.
const (
	ToneNeutral  = "neutral"
	TonePositive = "positive"
	ToneNegative = "negative"
)

// SummaryThresholds are the operator-facing pipeline health cutoffs. They are
// business constants with no documented derivation, so they live in config
// rather than law; these are the shipped defaults.
type SummaryThresholds struct {
	HealthySentRatePct    float64
	HealthyCLVPositivePct float64
	DegradedSentRatePct   float64
	DegradedCLVPct        float64
	DegradedMinCLVSamples int
}

func DefaultSummaryThresholds() SummaryThresholds {
	return SummaryThresholds{
		HealthySentRatePct:    85,
		HealthyCLVPositivePct: 50,
		DegradedSentRatePct:   65,
		DegradedCLVPct:        42,
		DegradedMinCLVSamples: 20,
	}
}

// OperatorSummary is the single verdict for the whole filtered view.
type OperatorSummary struct {
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
	Action   string `json:"action"`
	Tone     string `json:"tone"`
}

// Summarize folds the opportunity fleet plus the optional weekly quality
// summary into one headline/detail/action/tone. The degenerate no-data case
// is checked before anything else; tone rules are then evaluated healthy
// before degraded, first match wins.
func Summarize(opps []models.OpportunityRecord, weekly *models.WeeklyQualitySummary, th SummaryThresholds) OperatorSummary {
	if len(opps) == 0 && weekly == nil {
		return OperatorSummary{
			Headline: "Opportunity data unavailable",
			Detail:   "no ranked opportunities and no weekly quality summary for this view",
			Action:   "widen filters or extend the window to load opportunities",
			Tone:     ToneNeutral,
		}
	}

	var fresh, stale, actionable, monitor int
	for i := range opps {
		switch opps[i].FreshnessBucket {
		case ranking.BucketFresh:
			fresh++
		case ranking.BucketStale:
			stale++
		}
		switch opps[i].OpportunityStatus {
		case models.StatusActionable:
			actionable++
		case models.StatusMonitor:
			monitor++
		}
	}

	var sentRate, clvPositive float64
	var clvSamples int
	if weekly != nil {
		sentRate = weekly.SentRatePct
		clvPositive = weekly.CLVPctPositive
		clvSamples = weekly.CLVSamples
	}

	headline := "Alert pipeline mixed"
	tone := ToneNeutral
	switch {
	case sentRate >= th.HealthySentRatePct && clvPositive >= th.HealthyCLVPositivePct:
		headline = "Alert pipeline healthy"
		tone = TonePositive
	case sentRate < th.DegradedSentRatePct || (clvPositive < th.DegradedCLVPct && clvSamples >= th.DegradedMinCLVSamples):
		headline = "Alert pipeline degraded"
		tone = ToneNegative
	}

	parts := []string{
		fmt.Sprintf("%d fresh", fresh),
		fmt.Sprintf("%d monitor", monitor),
		fmt.Sprintf("%d stale", stale),
		fmt.Sprintf("from %d ranked opportunities", len(opps)),
	}
	if weekly != nil {
		parts = append(parts,
			fmt.Sprintf("sent rate %.1f%%", sentRate),
			fmt.Sprintf("CLV positive %.1f%% (%d samples)", clvPositive, clvSamples),
		)
	}

	var action string
	switch {
	case actionable > 0 && fresh > 0:
		n := actionable
		if fresh < n {
			n = fresh
		}
		action = fmt.Sprintf("prioritize the %d fresh actionable setups", n)
	case fresh > 0:
		action = "focus on fresh monitor setups and confirm freshness before acting"
	case stale > 0:
		action = "most setups are stale; refresh and avoid execution"
	default:
		action = "monitor and wait for fresher opportunities"
	}

	return OperatorSummary{
		Headline: headline,
		Detail:   strings.Join(parts, ", "),
		Action:   action,
		Tone:     tone,
	}
}
