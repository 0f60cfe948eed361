package pusher_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/calanor/fieldrig/internal/config"
	"github.com/calanor/fieldrig/internal/pusher"
	"github.com/calanor/fieldrig/internal/sim"
)

const (
	charge = 1.6022e-19
	mass   = 9.1094e-31
)

// newPushSim builds a simulation whose clock carries dt = 1/numSteps.
func newPushSim(numSteps int) *sim.Simulation {
	cfg := &config.File{
		Grid:  config.GridConfig{N: 4, Min: 0, Max: 1},
		Clock: config.ClockConfig{Start: 0, End: 1, NumSteps: numSteps},
	}
	s, err := sim.New(cfg, sim.NewRegistry(), zerolog.Nop())
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("ForwardEuler", func() {
	const dt = 0.5

	var (
		p        *pusher.ForwardEuler
		position []float64
		momentum []float64
		efield   []float64
		bfield   []float64
	)

	BeforeEach(func() {
		p = pusher.NewForwardEuler(newPushSim(2))
		Expect(p.Initialize()).To(Succeed())
		position = make([]float64, 3)
		momentum = make([]float64, 3)
		efield = []float64{0, 2.0, 0}
		bfield = make([]float64, 3)
	})

	It("kicks momentum with the field but holds position on the first push", func() {
		p.Push(position, momentum, charge, mass, efield, bfield)

		wantP := dt * 2.0 * charge
		Expect(momentum[1]).To(BeNumerically("~", wantP, wantP*1e-12))
		Expect(position).To(Equal([]float64{0, 0, 0}))
	})

	It("advances position with the pre-kick momentum", func() {
		p.Push(position, momentum, charge, mass, efield, bfield)
		p.Push(position, momentum, charge, mass, efield, bfield)

		wantP := 2 * dt * 2.0 * charge
		wantX := dt * (dt * 2.0 * charge) / mass
		Expect(momentum[1]).To(BeNumerically("~", wantP, wantP*1e-12))
		Expect(position[1]).To(BeNumerically("~", wantX, wantX*1e-12))
	})

	It("leaves components without field drive untouched", func() {
		p.Push(position, momentum, charge, mass, efield, bfield)

		Expect(momentum[0]).To(BeZero())
		Expect(momentum[2]).To(BeZero())
		Expect(position[0]).To(BeZero())
		Expect(position[2]).To(BeZero())
	})
})

var _ = Describe("Register", func() {
	It("contributes both pushers to a registry", func() {
		r := sim.NewRegistry()
		Expect(pusher.Register(r)).To(Succeed())
		Expect(r.ToolTypes()).To(Equal([]string{"Boris", "ForwardEuler"}))
	})
})
