package filter

import (
	"testing"

	"oddsdesk/internal/models"
)

func TestApplyPreset_AtomicOverwrite(t *testing.T) {
	// Start from a heavily customized state; nothing of it may survive the
	// threshold bundle switch.
	state := models.FilterState{
		SignalType:       "line_move",
		Market:           "totals",
		MinStrength:      99,
		MinSamples:       1,
		MinBooksAffected: 1,
		MaxDispersion:    floatPtr(9),
		WindowMinutesMax: intPtr(5),
		SelectedPreset:   models.PresetCustom,
	}
	got := ApplyPreset(state, models.PresetHighConfidence)
	if got.SelectedPreset != models.PresetHighConfidence {
		t.Fatalf("selectedPreset = %q", got.SelectedPreset)
	}
	if got.SignalType != models.FilterAll || got.Market != models.FilterAll {
		t.Fatalf("signalType/market not reset to ALL: %q/%q", got.SignalType, got.Market)
	}
	if got.MinStrength != 70 || got.MinSamples != 20 || got.MinBooksAffected != 4 {
		t.Fatalf("thresholds not overwritten: %+v", got)
	}
	if got.MaxDispersion == nil || *got.MaxDispersion != 1.5 {
		t.Fatalf("maxDispersion = %v, want 1.5", got.MaxDispersion)
	}
	if got.WindowMinutesMax != nil {
		t.Fatalf("windowMinutesMax = %v, want unset", *got.WindowMinutesMax)
	}
}

func TestApplyPreset_CustomKeepsThresholds(t *testing.T) {
	steam := ApplyPreset(DefaultState(), models.PresetSteamOnly)
	got := ApplyPreset(steam, models.PresetCustom)
	if got.SelectedPreset != models.PresetCustom {
		t.Fatalf("selectedPreset = %q", got.SelectedPreset)
	}
	// CUSTOM must not copy or reset thresholds; only the selector moves.
	steam.SelectedPreset = models.PresetCustom
	if got != steam {
		t.Fatalf("thresholds changed by CUSTOM: got %+v want %+v", got, steam)
	}
	if got.SignalType != "steam" || got.MinStrength != 60 || got.MinSamples != 15 {
		t.Fatalf("STEAM_ONLY values lost: %+v", got)
	}
	if got.MaxDispersion == nil || *got.MaxDispersion != 2.0 {
		t.Fatalf("maxDispersion = %v, want 2.0", got.MaxDispersion)
	}
	if got.WindowMinutesMax == nil || *got.WindowMinutesMax != 60 {
		t.Fatalf("windowMinutesMax = %v, want 60", got.WindowMinutesMax)
	}
}

func TestApplyPreset_UnknownKeyNoop(t *testing.T) {
	state := ApplyPreset(DefaultState(), models.PresetLowNoise)
	got := ApplyPreset(state, "NOT_A_PRESET")
	if got != state {
		t.Fatalf("unknown key changed state: %+v", got)
	}
}

func TestSetThreshold_ForcesCustom(t *testing.T) {
	state := ApplyPreset(DefaultState(), models.PresetEarlyMove)
	got := SetThreshold(state, func(s *models.FilterState) {
		s.MinStrength = 45
	})
	if got.SelectedPreset != models.PresetCustom {
		t.Fatalf("selectedPreset = %q, want CUSTOM", got.SelectedPreset)
	}
	if got.MinStrength != 45 {
		t.Fatalf("minStrength = %v, want 45", got.MinStrength)
	}
	if got.MinSamples != 10 {
		t.Fatalf("untouched field changed: %+v", got)
	}
}
