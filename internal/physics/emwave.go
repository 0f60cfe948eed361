package physics

import (
	"math"

	"github.com/calanor/fieldrig/internal/sim"
)

// SpeedOfLight fixes the dispersion relation k = ω/c.
const SpeedOfLight = 2.998e8

// EMWave maintains E(r, t) = E0·cos(2π·(k·(r−0.5) − ω·t)) over the grid.
// The field buffer is allocated once and rewritten in place each step, so
// subscribers keep a single long-lived reference.
type EMWave struct {
	sim   *sim.Simulation
	e0    float64
	omega float64
	k     float64
	field []float64
}

func NewEMWave(s *sim.Simulation, p sim.Params) (*EMWave, error) {
	amplitude, err := p.Float("amplitude")
	if err != nil {
		return nil, err
	}
	omega, err := p.Float("omega")
	if err != nil {
		return nil, err
	}
	return &EMWave{
		sim:   s,
		e0:    amplitude,
		omega: omega,
		k:     omega / SpeedOfLight,
		field: s.Grid().GenerateField(),
	}, nil
}

// K returns the wavenumber ω/c.
func (w *EMWave) K() float64 { return w.k }

// Field returns the shared field buffer.
func (w *EMWave) Field() []float64 { return w.field }

func (w *EMWave) Publish() sim.Resources {
	return sim.Resources{"EMField:E": w.field}
}

func (w *EMWave) Initialize() error {
	w.fill(w.sim.Clock().Time())
	return nil
}

func (w *EMWave) Update() error {
	w.fill(w.sim.Clock().Time())
	return nil
}

func (w *EMWave) fill(t float64) {
	for i, r := range w.sim.Grid().R() {
		phase := w.k*(r-0.5) - w.omega*t
		w.field[i] = w.e0 * math.Cos(2*math.Pi*phase)
	}
}
