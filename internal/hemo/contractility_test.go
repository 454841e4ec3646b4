package hemo

import (
	"math"
	"testing"
)

func TestDeriveMaxElastance(t *testing.T) {
	tests := []struct {
		contractility float64
		want          float64
	}{
		{0.1, 0.5},
		{0.55, 2.5},
		{1.0, 4.5},
		// out-of-range values extrapolate linearly, no clamping
		{0.0, 0.5 - 4.0/9.0},
		{1.45, 6.5},
	}

	for _, tt := range tests {
		got := DeriveMaxElastance(tt.contractility)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DeriveMaxElastance(%g) = %g, want %g", tt.contractility, got, tt.want)
		}
	}
}

func TestWithDerivedElastance(t *testing.T) {
	p := validParameters()
	p.Contractility = 1.0

	derived := p.WithDerivedElastance()
	if math.Abs(derived.MaxElastance-4.5) > 1e-9 {
		t.Errorf("expected derived max elastance 4.5, got %g", derived.MaxElastance)
	}
	// the receiver is untouched
	if p.MaxElastance != 2.0 {
		t.Errorf("original parameters mutated: %g", p.MaxElastance)
	}
}
