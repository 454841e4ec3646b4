package circ

import (
	"math"
	"testing"
)

func TestValveFlow(t *testing.T) {
	v := Valve{Resistance: 0.005}

	tests := []struct {
		name     string
		up, down float64
		want     float64
	}{
		{"closed on equal pressure", 10, 10, 0},
		{"closed on reverse gradient", 5, 80, 0},
		{"open", 12, 2, 10 / 0.005},
		{"small gradient", 2.5, 2, 0.5 / 0.005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Flow(tt.up, tt.down)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("flow(%g, %g) = %g, want %g", tt.up, tt.down, got, tt.want)
			}
		})
	}
}

func TestValveFlowNeverNegative(t *testing.T) {
	v := Valve{Resistance: AorticResistance}
	for up := -100.0; up <= 100; up += 7 {
		for down := -100.0; down <= 100; down += 7 {
			if got := v.Flow(up, down); got < 0 {
				t.Fatalf("negative flow %g for gradient %g -> %g", got, up, down)
			}
		}
	}
}
