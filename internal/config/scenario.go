package config

import (
	"encoding/json"
	"os"

	"github.com/san-kum/hemosim/internal/hemo"
)

// Scenario is the wire shape for persisted and exported scenarios. Field
// names match the historical export format and must not change.
type Scenario struct {
	HeartRate          float64 `json:"hr" yaml:"hr"`
	EDV                float64 `json:"edv" yaml:"edv"`
	ESV                float64 `json:"esv" yaml:"esv"`
	Contractility      float64 `json:"contr" yaml:"contr"`
	VascularResistance float64 `json:"svr" yaml:"svr"`
	Compliance         float64 `json:"comp" yaml:"comp"`
	VenousPressure     float64 `json:"rap" yaml:"rap"`
	MaxElastance       float64 `json:"Emax" yaml:"Emax"`
	MinElastance       float64 `json:"Emin" yaml:"Emin"`
	UnstressedVolume   float64 `json:"V0" yaml:"V0"`
}

// Parameters converts the wire shape to engine parameters.
func (s Scenario) Parameters() hemo.Parameters {
	return hemo.Parameters{
		HeartRate:          s.HeartRate,
		EDV:                s.EDV,
		ESV:                s.ESV,
		Contractility:      s.Contractility,
		VascularResistance: s.VascularResistance,
		Compliance:         s.Compliance,
		VenousPressure:     s.VenousPressure,
		MaxElastance:       s.MaxElastance,
		MinElastance:       s.MinElastance,
		UnstressedVolume:   s.UnstressedVolume,
	}
}

// FromParameters converts engine parameters back to the wire shape.
func FromParameters(p hemo.Parameters) Scenario {
	return Scenario{
		HeartRate:          p.HeartRate,
		EDV:                p.EDV,
		ESV:                p.ESV,
		Contractility:      p.Contractility,
		VascularResistance: p.VascularResistance,
		Compliance:         p.Compliance,
		VenousPressure:     p.VenousPressure,
		MaxElastance:       p.MaxElastance,
		MinElastance:       p.MinElastance,
		UnstressedVolume:   p.UnstressedVolume,
	}
}

// LoadScenario reads a scenario JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveScenario writes a scenario JSON file.
func SaveScenario(path string, s *Scenario) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
