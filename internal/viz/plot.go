package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hemosim/internal/hemo"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// PressurePlot renders arterial and ventricular pressure over one cycle.
func PressurePlot(trace hemo.Trace) string {
	arterial := make([]float64, len(trace))
	ventricular := make([]float64, len(trace))
	for i, s := range trace {
		arterial[i] = s.ArterialPressure
		ventricular[i] = s.VentricularPressure
	}

	var b strings.Builder
	b.WriteString(asciigraph.Plot(arterial,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("arterial pressure (mmHg)"),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(ventricular,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("ventricular pressure (mmHg)"),
	))
	return b.String()
}

// VolumePlot renders ventricular volume over one cycle.
func VolumePlot(trace hemo.Trace) string {
	volume := make([]float64, len(trace))
	for i, s := range trace {
		volume[i] = s.VentricularVolume
	}
	return asciigraph.Plot(volume,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("ventricular volume (mL)"),
	)
}

// SweepPlot renders one metric across sweep values.
func SweepPlot(values, metric []float64, name string) string {
	if len(metric) == 0 {
		return ""
	}
	caption := name
	if len(values) > 1 {
		caption = fmt.Sprintf("%s over [%g, %g]", name, values[0], values[len(values)-1])
	}
	return asciigraph.Plot(metric,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
