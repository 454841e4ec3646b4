package circ

import "math"

// SystolicFraction is the portion of the cardiac cycle spent in systole.
const SystolicFraction = 0.33

// NormalizedElastance evaluates the activation waveform at a cycle phase
// in [0,1). The systolic branch rises and falls as sin(πx)^1.5; the
// diastolic branch decays exponentially from 0.05.
//
// The waveform is discontinuous at phase == SystolicFraction: the
// systolic branch reaches 0 while the diastolic branch starts at 0.05.
// This matches the reference waveform and is kept as-is.
func NormalizedElastance(phase float64) float64 {
	if phase < SystolicFraction {
		x := phase / SystolicFraction
		return math.Pow(math.Sin(math.Pi*x), 1.5)
	}
	x := (phase - SystolicFraction) / (1 - SystolicFraction)
	return 0.05 * math.Exp(-3*x)
}

// Ventricle is a time-varying-elastance chamber.
type Ventricle struct {
	MaxElastance     float64 // mmHg/mL
	MinElastance     float64 // mmHg/mL
	UnstressedVolume float64 // mL
}

// Elastance returns the scaled elastance at the given cycle phase, mmHg/mL.
func (v Ventricle) Elastance(phase float64) float64 {
	return v.MinElastance + (v.MaxElastance-v.MinElastance)*NormalizedElastance(phase)
}

// Pressure returns the ventricular pressure for a given phase and volume.
// Volume below the unstressed volume yields zero pressure, never negative.
func (v Ventricle) Pressure(phase, volume float64) float64 {
	return v.Elastance(phase) * math.Max(0, volume-v.UnstressedVolume)
}
