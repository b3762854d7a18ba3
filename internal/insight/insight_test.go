package insight

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"oddsdesk/internal/models"
)

func decPtr(v string) *decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return &d
}

func intPtr(v int) *int { return &v }

func TestBuildOpportunityInsight_BranchOrder(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		bucket   string
		wantNext string
	}{
		{"actionable and fresh acts now", models.StatusActionable, "fresh", "act now, compare top books immediately."},
		{"stale bucket overrides actionable", models.StatusActionable, "stale", "refresh first; edge may be gone."},
		{"stale status alone refreshes", models.StatusStale, "aging", "refresh first; edge may be gone."},
		{"monitor and aging defaults", models.StatusMonitor, "aging", "monitor; confirm freshness before acting."},
		{"actionable but aging is not act-now", models.StatusActionable, "aging", "monitor; confirm freshness before acting."},
	}
	for _, tt := range tests {
		rec := models.OpportunityRecord{
			OpportunityStatus: tt.status,
			FreshnessBucket:   tt.bucket,
		}
		got := BuildOpportunityInsight(&rec)
		if got.NextStep != tt.wantNext {
			t.Fatalf("%s: next = %q, want %q", tt.name, got.NextStep, tt.wantNext)
		}
	}
}

func TestBuildOpportunityInsight_WhatChanged(t *testing.T) {
	rec := models.OpportunityRecord{
		BestBook:          "fanduel",
		BestDelta:         -0.0125,
		DeltaType:         "implied_prob",
		BestLine:          decPtr("-3.5"),
		BestPrice:         intPtr(-110),
		ConsensusLine:     decPtr("-3"),
		ConsensusPrice:    intPtr(-115),
		OpportunityStatus: models.StatusMonitor,
		FreshnessBucket:   "aging",
	}
	got := BuildOpportunityInsight(&rec)
	want := "fanduel moved 0.013 implied-probability points: best -3.5 (-110) vs consensus -3 (-115)"
	if got.WhatChanged != want {
		t.Fatalf("whatChanged = %q, want %q", got.WhatChanged, want)
	}
}

func TestBuildOpportunityInsight_PriceOnlyQuote(t *testing.T) {
	rec := models.OpportunityRecord{
		BestBook:       "draftkings",
		BestDelta:      4,
		DeltaType:      "line",
		BestPrice:      intPtr(150),
		ConsensusPrice: intPtr(135),
	}
	got := BuildOpportunityInsight(&rec)
	if !strings.Contains(got.WhatChanged, "best +150 vs consensus +135") {
		t.Fatalf("whatChanged = %q, want price-only quotes", got.WhatChanged)
	}
	if !strings.Contains(got.WhatChanged, "4.000 line points") {
		t.Fatalf("whatChanged = %q, want line points unit", got.WhatChanged)
	}
}

func TestBuildQualityInsight(t *testing.T) {
	sent := models.QualityRow{AlertDecision: models.AlertDecisionSent}
	got := BuildQualityInsight(&sent)
	if got.Decision != "Passed alert rules and was sent" {
		t.Fatalf("decision = %q", got.Decision)
	}
	if got.Action != "open game detail to compare current quotes" {
		t.Fatalf("action = %q", got.Action)
	}

	hidden := models.QualityRow{AlertDecision: models.AlertDecisionHidden, AlertReason: "below strength floor"}
	got = BuildQualityInsight(&hidden)
	if got.Decision != "Filtered by alert rules (below strength floor)" {
		t.Fatalf("decision = %q", got.Decision)
	}
	if got.Action != "adjust filters or alert rules if this should be included" {
		t.Fatalf("action = %q", got.Action)
	}
}
