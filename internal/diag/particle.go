package diag

import "github.com/calanor/fieldrig/internal/sim"

// ParticleDiagnostic records one component of the particle state
// ("position" or "momentum") once per step, plus one final sample at
// finalize, so a run of n steps yields n+1 rows.
type ParticleDiagnostic struct {
	sim       *sim.Simulation
	component string
	output    string
	filename  string

	data []float64
	out  *sink
}

func NewParticleDiagnostic(s *sim.Simulation, p sim.Params) (*ParticleDiagnostic, error) {
	component, err := p.String("component")
	if err != nil {
		return nil, err
	}
	output, err := p.String("output_type")
	if err != nil {
		return nil, err
	}
	d := &ParticleDiagnostic{sim: s, component: component, output: output}
	// filename is required only for the csv sink; an unknown output_type
	// is deferred to Initialize so it surfaces as exactly one error.
	if output == "csv" {
		if d.filename, err = p.String("filename"); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *ParticleDiagnostic) Subscribe(res sim.Resources) error {
	data, err := res.Get("ChargedParticle:" + d.component)
	if err != nil {
		return err
	}
	d.data = data
	return nil
}

func (d *ParticleDiagnostic) Initialize() error {
	out, err := newSink(d.output, d.filename, d.sim.Clock().NumSteps()+1, 3)
	if err != nil {
		return err
	}
	d.out = out
	return nil
}

func (d *ParticleDiagnostic) Diagnose() error {
	return d.out.emit(d.data)
}

func (d *ParticleDiagnostic) Finalize() error {
	if err := d.Diagnose(); err != nil {
		return err
	}
	return d.out.flush()
}
