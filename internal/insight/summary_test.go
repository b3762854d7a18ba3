package insight

import (
	"strings"
	"testing"

	"oddsdesk/internal/models"
)

func opp(status, bucket string) models.OpportunityRecord {
	return models.OpportunityRecord{OpportunityStatus: status, FreshnessBucket: bucket}
}

func weekly(sentRate, clvPositive float64, samples int) *models.WeeklyQualitySummary {
	return &models.WeeklyQualitySummary{
		SentRatePct:    sentRate,
		CLVPctPositive: clvPositive,
		CLVSamples:     samples,
	}
}

func TestSummarize_Degenerate(t *testing.T) {
	got := Summarize(nil, nil, DefaultSummaryThresholds())
	if got.Tone != ToneNeutral {
		t.Fatalf("tone = %q, want neutral", got.Tone)
	}
	if got.Headline != "Opportunity data unavailable" {
		t.Fatalf("headline = %q", got.Headline)
	}
	if !strings.Contains(got.Action, "widen filters") {
		t.Fatalf("action = %q, want widen-filters hint", got.Action)
	}
}

func TestSummarize_ToneBoundaries(t *testing.T) {
	th := DefaultSummaryThresholds()
	opps := []models.OpportunityRecord{opp(models.StatusMonitor, "aging")}
	tests := []struct {
		name     string
		weekly   *models.WeeklyQualitySummary
		wantTone string
	}{
		{"healthy", weekly(90, 60, 50), TonePositive},
		{"healthy at exact boundary", weekly(85, 50, 50), TonePositive},
		{"degraded by sent rate regardless of clv", weekly(50, 99, 50), ToneNegative},
		{"degraded just under sent rate floor", weekly(64.9, 99, 50), ToneNegative},
		{"mixed between floors", weekly(70, 80, 50), ToneNeutral},
		{"degraded by clv with enough samples", weekly(70, 41, 20), ToneNegative},
		{"low clv ignored without samples", weekly(70, 41, 19), ToneNeutral},
		{"clv at 42 is not degraded", weekly(70, 42, 100), ToneNeutral},
		{"missing weekly treated as zeros", nil, ToneNegative},
	}
	for _, tt := range tests {
		got := Summarize(opps, tt.weekly, th)
		if got.Tone != tt.wantTone {
			t.Fatalf("%s: tone = %q, want %q", tt.name, got.Tone, tt.wantTone)
		}
	}
}

func TestSummarize_DetailOrder(t *testing.T) {
	opps := []models.OpportunityRecord{
		opp(models.StatusActionable, "fresh"),
		opp(models.StatusMonitor, "fresh"),
		opp(models.StatusMonitor, "aging"),
		opp(models.StatusStale, "stale"),
	}
	got := Summarize(opps, weekly(88, 54.5, 31), DefaultSummaryThresholds())
	want := "2 fresh, 2 monitor, 1 stale, from 4 ranked opportunities, sent rate 88.0%, CLV positive 54.5% (31 samples)"
	if got.Detail != want {
		t.Fatalf("detail = %q, want %q", got.Detail, want)
	}
}

func TestSummarize_DetailWithoutWeekly(t *testing.T) {
	got := Summarize([]models.OpportunityRecord{opp(models.StatusMonitor, "fresh")}, nil, DefaultSummaryThresholds())
	if strings.Contains(got.Detail, "sent rate") || strings.Contains(got.Detail, "CLV") {
		t.Fatalf("detail = %q, want no weekly parts", got.Detail)
	}
}

func TestSummarize_ActionOrder(t *testing.T) {
	tests := []struct {
		name string
		opps []models.OpportunityRecord
		want string
	}{
		{
			"fresh actionable first",
			[]models.OpportunityRecord{
				opp(models.StatusActionable, "fresh"),
				opp(models.StatusActionable, "aging"),
				opp(models.StatusMonitor, "fresh"),
			},
			"prioritize the 2 fresh actionable setups",
		},
		{
			"fresh monitor next",
			[]models.OpportunityRecord{opp(models.StatusMonitor, "fresh")},
			"focus on fresh monitor setups and confirm freshness before acting",
		},
		{
			"stale fleet",
			[]models.OpportunityRecord{opp(models.StatusStale, "stale"), opp(models.StatusMonitor, "stale")},
			"most setups are stale; refresh and avoid execution",
		},
		{
			"default wait",
			[]models.OpportunityRecord{opp(models.StatusMonitor, "aging")},
			"monitor and wait for fresher opportunities",
		},
	}
	for _, tt := range tests {
		got := Summarize(tt.opps, weekly(90, 60, 50), DefaultSummaryThresholds())
		if got.Action != tt.want {
			t.Fatalf("%s: action = %q, want %q", tt.name, got.Action, tt.want)
		}
	}
}
