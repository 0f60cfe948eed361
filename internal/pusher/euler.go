// Package pusher provides the particle integrators. Each pusher captures
// the run timestep at initialize and advances position and momentum in
// place through [sim.Pusher].
package pusher

import "github.com/calanor/fieldrig/internal/sim"

// ForwardEuler is the explicit first-order scheme: momentum advances with
// the field at the start of the step, position with the momentum snapshot
// taken before the kick. First-order accurate; the caller bounds the error
// by keeping dt small against the oscillation period.
type ForwardEuler struct {
	sim *sim.Simulation
	dt  float64
}

func NewForwardEuler(s *sim.Simulation) *ForwardEuler {
	return &ForwardEuler{sim: s}
}

func (f *ForwardEuler) Initialize() error {
	f.dt = f.sim.Clock().Dt()
	return nil
}

func (f *ForwardEuler) Push(position, momentum []float64, charge, mass float64, e, b []float64) {
	var p0 [3]float64
	copy(p0[:], momentum)
	for i := range momentum {
		momentum[i] += f.dt * e[i] * charge
		position[i] += f.dt * p0[i] / mass
	}
}
