package diag

import "github.com/calanor/fieldrig/internal/sim"

// FieldDiagnostic records a whole published field buffer once per step,
// one grid point per column, with the same sinks and row budget as
// ParticleDiagnostic.
type FieldDiagnostic struct {
	sim      *sim.Simulation
	resource string
	output   string
	filename string

	data []float64
	out  *sink
}

func NewFieldDiagnostic(s *sim.Simulation, p sim.Params) (*FieldDiagnostic, error) {
	resource, err := p.StringOr("resource", "EMField:E")
	if err != nil {
		return nil, err
	}
	output, err := p.String("output_type")
	if err != nil {
		return nil, err
	}
	d := &FieldDiagnostic{sim: s, resource: resource, output: output}
	if output == "csv" {
		if d.filename, err = p.String("filename"); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *FieldDiagnostic) Subscribe(res sim.Resources) error {
	data, err := res.Get(d.resource)
	if err != nil {
		return err
	}
	d.data = data
	return nil
}

func (d *FieldDiagnostic) Initialize() error {
	out, err := newSink(d.output, d.filename, d.sim.Clock().NumSteps()+1, len(d.data))
	if err != nil {
		return err
	}
	d.out = out
	return nil
}

func (d *FieldDiagnostic) Diagnose() error {
	return d.out.emit(d.data)
}

func (d *FieldDiagnostic) Finalize() error {
	if err := d.Diagnose(); err != nil {
		return err
	}
	return d.out.flush()
}
