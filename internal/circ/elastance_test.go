package circ

import (
	"math"
	"testing"
)

func TestNormalizedElastanceBoundaries(t *testing.T) {
	if got := NormalizedElastance(0); got != 0 {
		t.Errorf("expected 0 at phase 0, got %g", got)
	}

	// peak of the systolic branch
	if got := NormalizedElastance(SystolicFraction / 2); got != 1 {
		t.Errorf("expected 1 at mid-systole, got %g", got)
	}

	// the systolic branch returns to 0 approaching the boundary
	if got := NormalizedElastance(SystolicFraction - 1e-9); got > 1e-3 {
		t.Errorf("expected ~0 just below systolic fraction, got %g", got)
	}

	// the diastolic branch starts at 0.05: the waveform is discontinuous
	// at the boundary and that is intentional
	if got := NormalizedElastance(SystolicFraction); got != 0.05 {
		t.Errorf("expected exactly 0.05 at systolic fraction, got %g", got)
	}
}

func TestNormalizedElastanceRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		phase := float64(i) / 1000
		v := NormalizedElastance(phase)
		if v < 0 || v > 1 {
			t.Fatalf("value %g out of [0,1] at phase %g", v, phase)
		}
	}
}

func TestVentricleElastance(t *testing.T) {
	v := Ventricle{MaxElastance: 2.0, MinElastance: 0.06, UnstressedVolume: 10}

	if got := v.Elastance(0); got != 0.06 {
		t.Errorf("expected min elastance at phase 0, got %g", got)
	}
	if got := v.Elastance(SystolicFraction / 2); got != 2.0 {
		t.Errorf("expected max elastance at mid-systole, got %g", got)
	}
}

func TestVentriclePressure(t *testing.T) {
	v := Ventricle{MaxElastance: 2.0, MinElastance: 0.06, UnstressedVolume: 10}

	// above the unstressed volume: E * (V - V0)
	want := v.Elastance(0.1) * 90
	if got := v.Pressure(0.1, 100); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}

	// at or below the unstressed volume pressure is zero, never negative
	if got := v.Pressure(0.1, 10); got != 0 {
		t.Errorf("expected 0 at unstressed volume, got %g", got)
	}
	if got := v.Pressure(0.1, -50); got != 0 {
		t.Errorf("expected 0 for negative volume, got %g", got)
	}
}
