package filter

import (
	"net/url"
	"reflect"
	"testing"

	"oddsdesk/internal/models"
)

func TestQueryRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state models.FilterState
	}{
		{"defaults", DefaultState()},
		{"steam preset", ApplyPreset(DefaultState(), models.PresetSteamOnly)},
		{
			"fully populated custom",
			models.FilterState{
				SignalType:       "line_move",
				Market:           "spreads",
				MinStrength:      62.5,
				MinSamples:       25,
				MinBooksAffected: 3,
				MaxDispersion:    floatPtr(1.25),
				WindowMinutesMax: intPtr(90),
				MinEdge:          floatPtr(0.5),
				MaxWidth:         floatPtr(2),
				IncludeStale:     true,
				SelectedPreset:   models.PresetCustom,
			},
		},
		{
			"partially unset",
			models.FilterState{
				SignalType:     models.FilterAll,
				Market:         "h2h",
				MinStrength:    10,
				MinEdge:        floatPtr(0.02),
				SelectedPreset: models.PresetEarlyMove,
			},
		},
	}
	for _, tt := range tests {
		got := DecodeQuery(EncodeQuery(tt.state))
		if !reflect.DeepEqual(got, tt.state) {
			t.Fatalf("%s: round trip mismatch\n got %+v\nwant %+v", tt.name, got, tt.state)
		}
	}
}

func TestDecodeQuery_MalformedKeepsDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("min_strength", "not-a-number")
	q.Set("min_samples", "12.5")
	q.Set("include_stale", "maybe")
	q.Set("selected_preset", "NOT_A_PRESET")
	got := DecodeQuery(q)
	want := DefaultState()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want defaults %+v", got, want)
	}
}

func TestDecodeQuery_Clamps(t *testing.T) {
	q := url.Values{}
	q.Set("min_strength", "250")
	q.Set("min_books_affected", "-3")
	q.Set("max_dispersion", "99")
	got := DecodeQuery(q)
	if got.MinStrength != 100 {
		t.Fatalf("minStrength = %v, want clamped 100", got.MinStrength)
	}
	if got.MinBooksAffected != 0 {
		t.Fatalf("minBooksAffected = %v, want clamped 0", got.MinBooksAffected)
	}
	if got.MaxDispersion == nil || *got.MaxDispersion != 10 {
		t.Fatalf("maxDispersion = %v, want clamped 10", got.MaxDispersion)
	}
}

func TestSanitize(t *testing.T) {
	state := models.FilterState{
		MinStrength:      -5,
		MinSamples:       999999,
		WindowMinutesMax: intPtr(999999),
		SelectedPreset:   "garbage",
	}
	got := Sanitize(state)
	if got.MinStrength != 0 {
		t.Fatalf("minStrength = %v", got.MinStrength)
	}
	if got.MinSamples != 10000 {
		t.Fatalf("minSamples = %v", got.MinSamples)
	}
	if got.WindowMinutesMax == nil || *got.WindowMinutesMax != 10080 {
		t.Fatalf("windowMinutesMax = %v", got.WindowMinutesMax)
	}
	if got.SelectedPreset != models.PresetCustom {
		t.Fatalf("selectedPreset = %q", got.SelectedPreset)
	}
	if got.SignalType != models.FilterAll || got.Market != models.FilterAll {
		t.Fatalf("empty signalType/market not defaulted: %+v", got)
	}
}
