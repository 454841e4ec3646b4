package metrics

import (
	"math"

	"github.com/san-kum/hemosim/internal/hemo"
)

// Extract reduces a final-beat trace to the clinical summary metrics.
// The heart rate is needed for cardiac output and comes from the same
// parameters that produced the trace.
func Extract(trace hemo.Trace, heartRate float64) (hemo.Metrics, error) {
	if len(trace) == 0 {
		return hemo.Metrics{}, hemo.ErrEmptyTrace
	}

	edv := trace[0].VentricularVolume
	esv := trace[0].VentricularVolume
	sbp := trace[0].ArterialPressure
	dbp := trace[0].ArterialPressure
	sum := 0.0

	for _, s := range trace {
		edv = math.Max(edv, s.VentricularVolume)
		esv = math.Min(esv, s.VentricularVolume)
		sbp = math.Max(sbp, s.ArterialPressure)
		dbp = math.Min(dbp, s.ArterialPressure)
		sum += s.ArterialPressure
	}

	sv := math.Max(0, edv-esv)

	ef := 0.0
	if edv > 0 {
		ef = sv / edv * 100
	}

	return hemo.Metrics{
		EDV: edv,
		ESV: esv,
		SV:  sv,
		CO:  heartRate * sv / 1000,
		MAP: sum / float64(len(trace)),
		SBP: sbp,
		DBP: dbp,
		PP:  sbp - dbp,
		EF:  ef,
	}, nil
}
