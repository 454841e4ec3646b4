package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/hemosim/internal/engine"
	"github.com/san-kum/hemosim/internal/hemo"
)

// Param names a sweepable scenario field.
type Param string

const (
	HeartRate          Param = "hr"
	VascularResistance Param = "svr"
	Compliance         Param = "comp"
	VenousPressure     Param = "rap"
	MaxElastance       Param = "emax"
)

// Point is one sweep result: the parameter value and the metrics of the
// run it produced.
type Point struct {
	Value   float64
	Metrics hemo.Metrics
}

// Sweep runs the engine once per value of a single parameter, holding
// everything else at the base scenario. Runs are independent and execute
// in parallel; each builds its own engine and state.
type Sweep struct {
	Base    hemo.Parameters
	Param   Param
	Values  []float64
	Options hemo.RunOptions
}

// Run executes the sweep. The context is checked before launching runs;
// individual runs are short bounded loops and are not interrupted.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("sweep: no values for %q", s.Param)
	}
	if _, err := apply(s.Base, s.Param, 1); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := make([]Point, len(s.Values))
	errs := make([]error, len(s.Values))

	var wg sync.WaitGroup
	for i, v := range s.Values {
		wg.Add(1)
		go func(idx int, val float64) {
			defer wg.Done()

			params, err := apply(s.Base, s.Param, val)
			if err != nil {
				errs[idx] = err
				return
			}

			result, err := engine.New().Simulate(params, s.Options)
			if err != nil {
				errs[idx] = fmt.Errorf("sweep %s=%g: %w", s.Param, val, err)
				return
			}

			points[idx] = Point{Value: val, Metrics: result.Metrics}
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

func apply(p hemo.Parameters, param Param, value float64) (hemo.Parameters, error) {
	switch param {
	case HeartRate:
		p.HeartRate = value
	case VascularResistance:
		p.VascularResistance = value
	case Compliance:
		p.Compliance = value
	case VenousPressure:
		p.VenousPressure = value
	case MaxElastance:
		p.MaxElastance = value
	default:
		return p, fmt.Errorf("sweep: unknown parameter %q", param)
	}
	return p, nil
}

// Range builds n evenly spaced values from lo to hi inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	values := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range values {
		values[i] = lo + float64(i)*step
	}
	return values
}
