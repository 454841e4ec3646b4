// Package hemo defines the shared types of the hemodynamic simulator:
// scenario parameters, run options, the integrated state, the retained
// final-beat trace, derived clinical metrics, and the error taxonomy.
//
// A run is fully determined by a [Parameters] value and a [RunOptions]
// value; no package in this module holds state across runs.
package hemo
