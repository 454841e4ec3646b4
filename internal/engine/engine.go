package engine

import (
	"math"

	"github.com/san-kum/hemosim/internal/circ"
	"github.com/san-kum/hemosim/internal/hemo"
	"github.com/san-kum/hemosim/internal/metrics"
)

// ArterialPressureSeed is the fixed initial arterial pressure, mmHg.
const ArterialPressureSeed = 90.0

// Result holds everything a run produces: the final-beat trace, the
// derived metrics, and the discretization actually used.
type Result struct {
	Trace   hemo.Trace
	Metrics hemo.Metrics
	Steps   int
	Dt      float64
}

// Engine runs multi-beat simulations. It holds no state between runs;
// concurrent Simulate calls are independent.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Simulate integrates beats × stepsPerBeat explicit Euler steps from a
// fresh initial condition and returns the retained final beat with its
// metrics. Steady state is approximated by the fixed beat count; callers
// needing tighter convergence increase Beats.
//
// The loop is plain and bounded: no timeout, no cancellation, no
// convergence check. Identical inputs produce bit-identical results.
func (e *Engine) Simulate(params hemo.Parameters, opts hemo.RunOptions) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hydraulicResistance, err := circ.ToHydraulicResistance(params.VascularResistance)
	if err != nil {
		return nil, err
	}

	period := 60 / params.HeartRate
	dt := period / float64(opts.StepsPerBeat)

	it := NewIntegrator(params, hydraulicResistance)

	state := hemo.State{
		VentricularVolume: params.EDV,
		ArterialPressure:  ArterialPressureSeed,
	}

	// Fixed-size buffer, overwritten every beat. The total step count is
	// a multiple of StepsPerBeat, so after the loop it holds exactly the
	// final beat in step order.
	trace := make(hemo.Trace, opts.StepsPerBeat)

	total := opts.Beats * opts.StepsPerBeat
	for s := 0; s < total; s++ {
		t := float64(s) * dt
		phase := math.Mod(t, period) / period

		var plv float64
		state, plv = it.Step(state, phase, dt)

		if name, val := state.NonFinite(); name != "" {
			return nil, &hemo.StepError{Step: s, Quantity: name, Value: val}
		}

		trace[s%opts.StepsPerBeat] = hemo.Sample{
			CyclePhase:          phase,
			ArterialPressure:    state.ArterialPressure,
			VentricularPressure: plv,
			VentricularVolume:   state.VentricularVolume,
		}
	}

	m, err := metrics.Extract(trace, params.HeartRate)
	if err != nil {
		return nil, err
	}

	return &Result{Trace: trace, Metrics: m, Steps: total, Dt: dt}, nil
}
