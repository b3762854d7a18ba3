package filter

import "oddsdesk/internal/models"

// presetBundle is one complete threshold bundle. Applying it overwrites every
// threshold field; nil pointers here reset the corresponding field to unset,
// and empty strings reset signalType/market to ALL. Nothing from the previous
// state survives a preset switch.
type presetBundle struct {
	SignalType       string
	Market           string
	MinStrength      float64
	MinSamples       int
	MinBooksAffected int
	MaxDispersion    *float64
	WindowMinutesMax *int
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// presets is the static preset table. Each entry is a complete bundle; none
// of them share values, so a switch is always observable.
var presets = map[string]presetBundle{
	models.PresetHighConfidence: {
		SignalType:       models.FilterAll,
		Market:           models.FilterAll,
		MinStrength:      70,
		MinSamples:       20,
		MinBooksAffected: 4,
		MaxDispersion:    floatPtr(1.5),
	},
	models.PresetLowNoise: {
		SignalType:       models.FilterAll,
		Market:           models.FilterAll,
		MinStrength:      55,
		MinSamples:       30,
		MinBooksAffected: 5,
		MaxDispersion:    floatPtr(1.0),
	},
	models.PresetEarlyMove: {
		SignalType:       models.FilterAll,
		Market:           models.FilterAll,
		MinStrength:      40,
		MinSamples:       10,
		MinBooksAffected: 2,
		WindowMinutesMax: intPtr(30),
	},
	models.PresetSteamOnly: {
		SignalType:       "steam",
		Market:           models.FilterAll,
		MinStrength:      60,
		MinSamples:       15,
		MinBooksAffected: 4,
		MaxDispersion:    floatPtr(2.0),
		WindowMinutesMax: intPtr(60),
	},
}

// PresetKeys lists the named presets in display order.
func PresetKeys() []string {
	return []string{
		models.PresetHighConfidence,
		models.PresetLowNoise,
		models.PresetEarlyMove,
		models.PresetSteamOnly,
	}
}

// IsPresetKey reports whether key names a preset (CUSTOM included).
func IsPresetKey(key string) bool {
	if key == models.PresetCustom {
		return true
	}
	_, ok := presets[key]
	return ok
}

// ApplyPreset is the single transition function of the preset state machine.
// CUSTOM keeps every threshold as-is and only moves the selector; a named
// preset overwrites the whole threshold bundle atomically. Unknown keys leave
// the state unchanged.
func ApplyPreset(state models.FilterState, key string) models.FilterState {
	if key == models.PresetCustom {
		state.SelectedPreset = models.PresetCustom
		return state
	}
	bundle, ok := presets[key]
	if !ok {
		return state
	}
	state.SignalType = bundle.SignalType
	state.Market = bundle.Market
	state.MinStrength = bundle.MinStrength
	state.MinSamples = bundle.MinSamples
	state.MinBooksAffected = bundle.MinBooksAffected
	state.MaxDispersion = copyFloat(bundle.MaxDispersion)
	state.WindowMinutesMax = copyInt(bundle.WindowMinutesMax)
	state.SelectedPreset = key
	return state
}

// SetThreshold applies a direct edit to one threshold field and forces the
// CUSTOM state. Every input change handler goes through here rather than
// scattering "set to custom" calls across call sites.
func SetThreshold(state models.FilterState, mutate func(*models.FilterState)) models.FilterState {
	mutate(&state)
	state.SelectedPreset = models.PresetCustom
	return state
}

// DefaultState is the filter bundle a brand-new view starts from.
func DefaultState() models.FilterState {
	return models.FilterState{
		SignalType:     models.FilterAll,
		Market:         models.FilterAll,
		SelectedPreset: models.PresetCustom,
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
