// Package circ provides the lumped circulation elements: the
// time-varying-elastance ventricle, the diode valve model, the
// three-element Windkessel arterial load, and the conversion from
// conventional vascular resistance units to hydraulic resistance.
//
// All elements are pure value types; the integration loop in
// internal/engine composes them each step.
package circ
