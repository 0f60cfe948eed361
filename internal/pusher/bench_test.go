package pusher_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/calanor/fieldrig/internal/config"
	"github.com/calanor/fieldrig/internal/pusher"
	"github.com/calanor/fieldrig/internal/sim"
)

func benchSim(b *testing.B) *sim.Simulation {
	b.Helper()
	cfg := &config.File{
		Grid:  config.GridConfig{N: 4, Min: 0, Max: 1},
		Clock: config.ClockConfig{Start: 0, End: 1, NumSteps: 100},
	}
	s, err := sim.New(cfg, sim.NewRegistry(), zerolog.Nop())
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkForwardEulerPush(b *testing.B) {
	p := pusher.NewForwardEuler(benchSim(b))
	if err := p.Initialize(); err != nil {
		b.Fatal(err)
	}
	position := make([]float64, 3)
	momentum := make([]float64, 3)
	efield := []float64{0, 10.0, 0}
	bfield := make([]float64, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Push(position, momentum, charge, mass, efield, bfield)
	}
}

func BenchmarkBorisPush(b *testing.B) {
	p := pusher.NewBoris(benchSim(b))
	if err := p.Initialize(); err != nil {
		b.Fatal(err)
	}
	position := make([]float64, 3)
	momentum := make([]float64, 3)
	efield := []float64{0, 10.0, 0}
	bfield := []float64{0, 0, 1e-3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Push(position, momentum, charge, mass, efield, bfield)
	}
}
