package config

import "sort"

// presets are typical water masses. The unesco_check temperature is the
// ITS-90 equivalent of T68 = 40 °C used in the published check values.
var presets = map[string]ProfileConfig{
	"unesco_check": {
		Name: "unesco_check", Salinity: 40, Temperature: 40 / 1.00024,
		PressureStart: 0, PressureStop: 10000, PressureStep: 1000, Reference: 0,
	},
	"surface": {
		Name: "surface", Salinity: 35, Temperature: 25,
		PressureStart: 0, PressureStop: 200, PressureStep: 20, Reference: 0,
	},
	"deep": {
		Name: "deep", Salinity: 34.7, Temperature: 2,
		PressureStart: 0, PressureStop: 6000, PressureStep: 500, Reference: 4000,
	},
	"mediterranean": {
		Name: "mediterranean", Salinity: 38.5, Temperature: 13,
		PressureStart: 0, PressureStop: 2500, PressureStep: 250, Reference: 0,
	},
	"polar": {
		Name: "polar", Salinity: 34, Temperature: -1.5,
		PressureStart: 0, PressureStop: 4000, PressureStep: 400, Reference: 0,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *ProfileConfig {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
