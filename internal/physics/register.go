package physics

import "github.com/calanor/fieldrig/internal/sim"

// Register adds the package's module types to r.
func Register(r *sim.Registry) error {
	if err := r.RegisterModule("EMWave", func(s *sim.Simulation, p sim.Params) (sim.Module, error) {
		return NewEMWave(s, p)
	}); err != nil {
		return err
	}
	return r.RegisterModule("ChargedParticle", func(s *sim.Simulation, p sim.Params) (sim.Module, error) {
		return NewChargedParticle(s, p)
	})
}
