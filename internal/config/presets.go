package config

import "sort"

// Presets are named baseline scenarios. "normal" is the reference adult
// at rest; the others perturb afterload, contractility, or rate.
var Presets = map[string]Scenario{
	"normal": {
		HeartRate: 75, EDV: 120, ESV: 50, Contractility: 0.5,
		VascularResistance: 1200, Compliance: 1.5, VenousPressure: 2,
		MaxElastance: 2.0, MinElastance: 0.06, UnstressedVolume: 10,
	},
	"hypertension": {
		HeartRate: 80, EDV: 115, ESV: 55, Contractility: 0.55,
		VascularResistance: 1900, Compliance: 0.9, VenousPressure: 3,
		MaxElastance: 2.2, MinElastance: 0.07, UnstressedVolume: 10,
	},
	"heart_failure": {
		HeartRate: 95, EDV: 180, ESV: 120, Contractility: 0.2,
		VascularResistance: 1500, Compliance: 1.2, VenousPressure: 8,
		MaxElastance: 0.9, MinElastance: 0.09, UnstressedVolume: 15,
	},
	"tachycardia": {
		HeartRate: 150, EDV: 95, ESV: 45, Contractility: 0.5,
		VascularResistance: 1100, Compliance: 1.5, VenousPressure: 2,
		MaxElastance: 2.0, MinElastance: 0.06, UnstressedVolume: 10,
	},
	"athlete": {
		HeartRate: 50, EDV: 160, ESV: 55, Contractility: 0.7,
		VascularResistance: 1000, Compliance: 2.0, VenousPressure: 2,
		MaxElastance: 2.6, MinElastance: 0.05, UnstressedVolume: 10,
	},
}

func GetPreset(name string) (Scenario, bool) {
	s, ok := Presets[name]
	return s, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
