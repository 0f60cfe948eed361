package pusher_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calanor/fieldrig/internal/pusher"
)

var _ = Describe("Boris", func() {
	const dt = 0.5

	var (
		p        *pusher.Boris
		position []float64
		momentum []float64
	)

	norm := func(v []float64) float64 {
		return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	}

	BeforeEach(func() {
		p = pusher.NewBoris(newPushSim(2))
		Expect(p.Initialize()).To(Succeed())
		position = make([]float64, 3)
		momentum = make([]float64, 3)
	})

	It("reduces to the semi-implicit Euler update without a magnetic field", func() {
		efield := []float64{0, 2.0, 0}
		bfield := make([]float64, 3)

		p.Push(position, momentum, charge, mass, efield, bfield)

		wantP := dt * 2.0 * charge
		wantX := dt * wantP / mass
		Expect(momentum[1]).To(BeNumerically("~", wantP, wantP*1e-12))
		// Unlike the explicit scheme the position moves on the first
		// push, because the advance uses the freshly kicked momentum.
		Expect(position[1]).To(BeNumerically("~", wantX, wantX*1e-12))
	})

	It("preserves momentum magnitude under a pure magnetic rotation", func() {
		efield := make([]float64, 3)
		bfield := []float64{0, 0, 1e-3}
		momentum[0] = 3e-25
		momentum[2] = 4e-25
		norm0 := norm(momentum)

		for i := 0; i < 100; i++ {
			p.Push(position, momentum, charge, mass, efield, bfield)
		}

		Expect(norm(momentum)).To(BeNumerically("~", norm0, norm0*1e-12))
	})

	It("keeps the component along the magnetic field fixed", func() {
		efield := make([]float64, 3)
		bfield := []float64{0, 0, 1e-3}
		momentum[0] = 3e-25
		momentum[2] = 4e-25

		for i := 0; i < 10; i++ {
			p.Push(position, momentum, charge, mass, efield, bfield)
		}

		Expect(momentum[2]).To(Equal(4e-25))
	})
})
