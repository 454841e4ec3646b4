package engine

import (
	"github.com/san-kum/hemosim/internal/circ"
	"github.com/san-kum/hemosim/internal/hemo"
)

// Integrator advances the coupled ventricle/Windkessel state one explicit
// Euler step. It is built once per run from the scenario parameters and
// the precomputed hydraulic resistance.
type Integrator struct {
	ventricle      circ.Ventricle
	mitral         circ.Valve
	aortic         circ.Valve
	arterial       circ.Windkessel
	venousPressure float64
}

func NewIntegrator(p hemo.Parameters, hydraulicResistance float64) *Integrator {
	return &Integrator{
		ventricle: circ.Ventricle{
			MaxElastance:     p.MaxElastance,
			MinElastance:     p.MinElastance,
			UnstressedVolume: p.UnstressedVolume,
		},
		mitral:         circ.Valve{Resistance: circ.MitralResistance},
		aortic:         circ.Valve{Resistance: circ.AorticResistance},
		arterial:       circ.Windkessel{Compliance: p.Compliance, Resistance: hydraulicResistance},
		venousPressure: p.VenousPressure,
	}
}

// Step computes one simultaneous Euler update: both derivatives are
// evaluated on the pre-update state before either variable moves. No
// clamping is applied; extreme parameters may drive values outside
// physiologic ranges and that is accepted numerical behavior.
//
// It returns the new state and the ventricular pressure used this step.
func (it *Integrator) Step(s hemo.State, phase, dt float64) (hemo.State, float64) {
	plv := it.ventricle.Pressure(phase, s.VentricularVolume)

	qin := it.mitral.Flow(it.venousPressure, plv)
	qout := it.aortic.Flow(plv, s.ArterialPressure)

	dPressure := dt * it.arterial.PressureRate(s.ArterialPressure, qout)
	dVolume := dt * (qin - qout)

	return hemo.State{
		VentricularVolume: s.VentricularVolume + dVolume,
		ArterialPressure:  s.ArterialPressure + dPressure,
	}, plv
}
