package circ

// Windkessel is the lumped arterial load: a compliance charged by aortic
// inflow and drained through the peripheral resistance.
type Windkessel struct {
	Compliance float64 // mL/mmHg
	Resistance float64 // hydraulic, mmHg per mL/s
}

// PressureRate returns dP/dt (mmHg/s) for arterial pressure p under
// aortic inflow qout (mL/s).
func (w Windkessel) PressureRate(p, qout float64) float64 {
	return (qout - p/w.Resistance) / w.Compliance
}
