package diag

import "github.com/calanor/fieldrig/internal/sim"

// Register adds the package's diagnostic types to r.
func Register(r *sim.Registry) error {
	if err := r.RegisterDiagnostic("ParticleDiagnostic", func(s *sim.Simulation, p sim.Params) (sim.Diagnostic, error) {
		return NewParticleDiagnostic(s, p)
	}); err != nil {
		return err
	}
	return r.RegisterDiagnostic("FieldDiagnostic", func(s *sim.Simulation, p sim.Params) (sim.Diagnostic, error) {
		return NewFieldDiagnostic(s, p)
	})
}
