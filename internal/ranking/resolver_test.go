package ranking

import (
	"math"
	"testing"

	"oddsdesk/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestResolveRanking_PriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		rec       models.OpportunityRecord
		wantValue float64
		wantBasis string
	}{
		{
			name:      "ranking score wins over opportunity score",
			rec:       models.OpportunityRecord{RankingScore: floatPtr(71.5), OpportunityScore: 40},
			wantValue: 71.5,
			wantBasis: models.ScoreBasisOpportunity,
		},
		{
			name: "blended basis honored when ranking score used",
			rec: models.OpportunityRecord{
				RankingScore:     floatPtr(66),
				ScoreBasis:       strPtr(models.ScoreBasisBlended),
				OpportunityScore: 40,
			},
			wantValue: 66,
			wantBasis: models.ScoreBasisBlended,
		},
		{
			name: "unknown basis defaults to opportunity",
			rec: models.OpportunityRecord{
				RankingScore:     floatPtr(66),
				ScoreBasis:       strPtr("bogus"),
				OpportunityScore: 40,
			},
			wantValue: 66,
			wantBasis: models.ScoreBasisOpportunity,
		},
		{
			name:      "missing ranking score falls back",
			rec:       models.OpportunityRecord{OpportunityScore: 52.25},
			wantValue: 52.25,
			wantBasis: models.ScoreBasisOpportunity,
		},
		{
			name: "non-finite ranking score falls back",
			rec: models.OpportunityRecord{
				RankingScore:     floatPtr(math.NaN()),
				ScoreBasis:       strPtr(models.ScoreBasisBlended),
				OpportunityScore: 33,
			},
			wantValue: 33,
			wantBasis: models.ScoreBasisOpportunity,
		},
	}
	for _, tt := range tests {
		got := ResolveRanking(&tt.rec)
		if got.Value != tt.wantValue || got.Basis != tt.wantBasis {
			t.Fatalf("%s: got {%v %q}, want {%v %q}", tt.name, got.Value, got.Basis, tt.wantValue, tt.wantBasis)
		}
	}
}

func TestResolveEdge_LineOverProb(t *testing.T) {
	rec := models.OpportunityRecord{BestEdgeLine: floatPtr(1.5), BestEdgeProb: floatPtr(0.03)}
	got := ResolveEdge(&rec)
	if got.Value == nil || *got.Value != 1.5 || got.Label != EdgeLabelLine {
		t.Fatalf("got %+v, want line 1.5", got)
	}
}

func TestResolveEdge_ProbFallback(t *testing.T) {
	rec := models.OpportunityRecord{BestEdgeProb: floatPtr(0.03)}
	got := ResolveEdge(&rec)
	if got.Value == nil || *got.Value != 0.03 || got.Label != EdgeLabelProb {
		t.Fatalf("got %+v, want prob 0.03", got)
	}
}

func TestResolveEdge_BothAbsent(t *testing.T) {
	got := ResolveEdge(&models.OpportunityRecord{})
	if got.Value != nil || got.Label != EdgeLabelLine {
		t.Fatalf("got %+v, want nil value with line label", got)
	}
}

func TestClassifyWidth(t *testing.T) {
	tests := []struct {
		market string
		width  *float64
		want   string
	}{
		{"h2h", floatPtr(0.02), WidthTight},
		{"h2h", floatPtr(0.021), WidthBalanced},
		{"h2h", floatPtr(0.05), WidthWide},
		{"h2h", floatPtr(0.049), WidthBalanced},
		{"spreads", floatPtr(1.0), WidthTight},
		{"spreads", floatPtr(1.5), WidthBalanced},
		{"spreads", floatPtr(2.5), WidthWide},
		{"totals", floatPtr(3.0), WidthWide},
		{"totals", floatPtr(0.5), WidthTight},
		{"h2h", nil, WidthNA},
		{"spreads", nil, WidthNA},
	}
	for _, tt := range tests {
		if got := ClassifyWidth(tt.market, tt.width); got != tt.want {
			t.Fatalf("ClassifyWidth(%q, %v) = %q, want %q", tt.market, tt.width, got, tt.want)
		}
	}
}

func TestDisplayMinutes(t *testing.T) {
	sec := 150
	if got := DisplayMinutes(&sec); got != "2" {
		t.Fatalf("DisplayMinutes(150) = %q, want 2", got)
	}
	zero := 59
	if got := DisplayMinutes(&zero); got != "0" {
		t.Fatalf("DisplayMinutes(59) = %q, want 0", got)
	}
	if got := DisplayMinutes(nil); got != "-" {
		t.Fatalf("DisplayMinutes(nil) = %q, want -", got)
	}
}
