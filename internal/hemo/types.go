package hemo

import (
	"fmt"
	"math"
)

// Parameters describes one cardiovascular scenario. Values are immutable
// for the duration of a run; the engine never writes back into them.
type Parameters struct {
	HeartRate          float64 // beats per minute
	EDV                float64 // end-diastolic volume hint, mL (initial condition only)
	ESV                float64 // end-systolic volume hint, mL (informational)
	Contractility      float64 // dimensionless drive on a 0-1 scale
	VascularResistance float64 // systemic vascular resistance, dyn·s·cm⁻⁵
	Compliance         float64 // arterial compliance, mL/mmHg
	VenousPressure     float64 // fixed venous (right atrial) pressure, mmHg
	MaxElastance       float64 // end-systolic elastance, mmHg/mL
	MinElastance       float64 // baseline elastance, mmHg/mL
	UnstressedVolume   float64 // ventricular volume at zero transmural pressure, mL
}

func (p Parameters) Validate() error {
	if p.HeartRate <= 0 {
		return fmt.Errorf("%w: heart rate must be positive, got %g", ErrInvalidParameter, p.HeartRate)
	}
	if p.VascularResistance <= 0 {
		return fmt.Errorf("%w: vascular resistance must be positive, got %g", ErrInvalidParameter, p.VascularResistance)
	}
	if p.Compliance <= 0 {
		return fmt.Errorf("%w: compliance must be positive, got %g", ErrInvalidParameter, p.Compliance)
	}
	if p.MaxElastance <= p.MinElastance {
		return fmt.Errorf("%w: max elastance (%g) must exceed min elastance (%g)",
			ErrInvalidParameter, p.MaxElastance, p.MinElastance)
	}
	return nil
}

// RunOptions controls the discretization of a run.
type RunOptions struct {
	StepsPerBeat int
	Beats        int
}

func DefaultRunOptions() RunOptions {
	return RunOptions{StepsPerBeat: 400, Beats: 8}
}

func (o RunOptions) Validate() error {
	if o.StepsPerBeat <= 0 {
		return fmt.Errorf("%w: steps per beat must be positive, got %d", ErrInvalidParameter, o.StepsPerBeat)
	}
	if o.Beats <= 0 {
		return fmt.Errorf("%w: beats must be positive, got %d", ErrInvalidParameter, o.Beats)
	}
	return nil
}

// State holds the two integrated variables. Venous pressure is a run
// constant and deliberately not part of the state.
type State struct {
	VentricularVolume float64 // mL
	ArterialPressure  float64 // mmHg
}

// NonFinite reports the first non-finite state variable, if any.
func (s State) NonFinite() (string, float64) {
	if math.IsNaN(s.VentricularVolume) || math.IsInf(s.VentricularVolume, 0) {
		return "ventricular volume", s.VentricularVolume
	}
	if math.IsNaN(s.ArterialPressure) || math.IsInf(s.ArterialPressure, 0) {
		return "arterial pressure", s.ArterialPressure
	}
	return "", 0
}

func (s State) IsValid() bool {
	name, _ := s.NonFinite()
	return name == ""
}

// Sample is one point of the retained final-beat trace.
type Sample struct {
	CyclePhase          float64 `json:"phase"`  // fraction of the cardiac cycle, [0,1)
	ArterialPressure    float64 `json:"p_art"`  // mmHg
	VentricularPressure float64 `json:"p_lv"`   // mmHg
	VentricularVolume   float64 `json:"volume"` // mL
}

// Trace is the final beat, time-ordered, one sample per step.
type Trace []Sample

// Metrics are the clinical summary statistics of one steady-state beat.
type Metrics struct {
	EDV float64 `json:"edv"` // end-diastolic volume, mL
	ESV float64 `json:"esv"` // end-systolic volume, mL
	SV  float64 `json:"sv"`  // stroke volume, mL
	CO  float64 `json:"co"`  // cardiac output, L/min
	MAP float64 `json:"map"` // mean arterial pressure, mmHg
	SBP float64 `json:"sbp"` // systolic arterial pressure, mmHg
	DBP float64 `json:"dbp"` // diastolic arterial pressure, mmHg
	PP  float64 `json:"pp"`  // pulse pressure, mmHg
	EF  float64 `json:"ef"`  // ejection fraction, percent
}
