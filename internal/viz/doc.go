// Package viz renders a live terminal view of a running simulation.
//
// The package implements a single Bubble Tea model:
//
//   - [Model]: steps a prepared simulation and redraws each frame
//   - [NewModel]: wraps a simulation and picks up its published buffers
//
// The field buffer is plotted with asciigraph; particle state, run
// progress, and a momentum sparkline render alongside.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	Q     - Quit
package viz
