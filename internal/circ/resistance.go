package circ

import (
	"fmt"

	"github.com/san-kum/hemosim/internal/hemo"
)

// ToHydraulicResistance converts a systemic vascular resistance in
// dyn·s·cm⁻⁵ to the hydraulic resistance used by the circuit equations,
// in mmHg per mL/s. The /80 converts to mmHg·min/L, the /60 converts
// minutes to seconds.
func ToHydraulicResistance(vascularResistance float64) (float64, error) {
	if vascularResistance <= 0 {
		return 0, fmt.Errorf("%w: vascular resistance must be positive, got %g",
			hemo.ErrInvalidParameter, vascularResistance)
	}
	return (vascularResistance / 80) / 60, nil
}
