package pusher

import "github.com/calanor/fieldrig/internal/sim"

// Register adds the package's tool types to r.
func Register(r *sim.Registry) error {
	if err := r.RegisterTool("ForwardEuler", func(s *sim.Simulation, p sim.Params) (sim.Tool, error) {
		return NewForwardEuler(s), nil
	}); err != nil {
		return err
	}
	return r.RegisterTool("Boris", func(s *sim.Simulation, p sim.Params) (sim.Tool, error) {
		return NewBoris(s), nil
	})
}
