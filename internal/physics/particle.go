package physics

import (
	"fmt"

	"github.com/calanor/fieldrig/internal/sim"
)

// Electron constants.
const (
	ElectronCharge = 1.6022e-19
	ElectronMass   = 9.1094e-31
	EOverM         = 1.7588e11
)

// ChargedParticle owns one electron's position and momentum, both
// 3-vectors mutated in place by the configured pusher. The electric field
// is sampled at the particle's fixed initial location; only the y slot of
// the sample is driven, and the magnetic field is always zero.
type ChargedParticle struct {
	sim    *sim.Simulation
	x      float64
	interp func(field []float64) float64
	pusher sim.Pusher

	field    []float64
	position []float64
	momentum []float64
	sample   [3]float64
	zeroB    [3]float64
}

func NewChargedParticle(s *sim.Simulation, p sim.Params) (*ChargedParticle, error) {
	x, err := p.Float("position")
	if err != nil {
		return nil, err
	}
	name, err := p.String("pusher")
	if err != nil {
		return nil, err
	}
	tool, err := s.FindTool(name)
	if err != nil {
		return nil, err
	}
	pusher, ok := tool.(sim.Pusher)
	if !ok {
		return nil, fmt.Errorf("%w: %q: tool %q cannot push particles", sim.ErrBadParam, "pusher", name)
	}
	interp, err := s.Grid().Interpolator(x)
	if err != nil {
		return nil, err
	}
	return &ChargedParticle{
		sim:      s,
		x:        x,
		interp:   interp,
		pusher:   pusher,
		position: make([]float64, 3),
		momentum: make([]float64, 3),
	}, nil
}

// Position returns the shared position buffer.
func (c *ChargedParticle) Position() []float64 { return c.position }

// Momentum returns the shared momentum buffer.
func (c *ChargedParticle) Momentum() []float64 { return c.momentum }

func (c *ChargedParticle) Publish() sim.Resources {
	return sim.Resources{
		"ChargedParticle:position": c.position,
		"ChargedParticle:momentum": c.momentum,
	}
}

func (c *ChargedParticle) Subscribe(res sim.Resources) error {
	field, err := res.Get("EMField:E")
	if err != nil {
		return err
	}
	c.field = field
	return nil
}

func (c *ChargedParticle) Initialize() error { return nil }

func (c *ChargedParticle) Update() error {
	c.sample[1] = c.interp(c.field)
	c.pusher.Push(c.position, c.momentum, ElectronCharge, ElectronMass, c.sample[:], c.zeroB[:])
	return nil
}
