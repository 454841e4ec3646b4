// Package viz renders simulation output for the terminal: asciigraph
// strip charts of the final-beat trace, a lipgloss metrics panel, and a
// bubbletea player that loops the beat live.
package viz
