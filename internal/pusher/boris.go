package pusher

import "github.com/calanor/fieldrig/internal/sim"

// Boris is the standard non-relativistic Boris scheme: half electric kick,
// norm-preserving magnetic rotation, half kick, then position advance with
// the post-update momentum. With a zero magnetic field it reduces to the
// semi-implicit Euler update.
type Boris struct {
	sim *sim.Simulation
	dt  float64
}

func NewBoris(s *sim.Simulation) *Boris {
	return &Boris{sim: s}
}

func (bo *Boris) Initialize() error {
	bo.dt = bo.sim.Clock().Dt()
	return nil
}

func (bo *Boris) Push(position, momentum []float64, charge, mass float64, e, b []float64) {
	half := 0.5 * bo.dt * charge

	var pm, t [3]float64
	for i := 0; i < 3; i++ {
		pm[i] = momentum[i] + half*e[i]
		t[i] = half * b[i] / mass
	}
	tsq := t[0]*t[0] + t[1]*t[1] + t[2]*t[2]

	var s [3]float64
	for i := 0; i < 3; i++ {
		s[i] = 2 * t[i] / (1 + tsq)
	}

	pp := cross(pm, t)
	for i := 0; i < 3; i++ {
		pp[i] += pm[i]
	}
	ps := cross(pp, s)
	for i := 0; i < 3; i++ {
		momentum[i] = pm[i] + ps[i] + half*e[i]
		position[i] += bo.dt * momentum[i] / mass
	}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
