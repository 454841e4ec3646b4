package circ

// Valve resistances, mmHg per mL/s. Fixed model constants, not tunable
// scenario parameters.
const (
	MitralResistance = 0.005
	AorticResistance = 0.0025
)

// Valve is an ideal diode: flow is proportional to a positive pressure
// gradient and zero otherwise, with no regurgitant leak.
type Valve struct {
	Resistance float64 // mmHg per mL/s
}

// Flow returns the valve flow in mL/s, never negative.
func (v Valve) Flow(upstream, downstream float64) float64 {
	dp := upstream - downstream
	if dp <= 0 {
		return 0
	}
	return dp / v.Resistance
}
