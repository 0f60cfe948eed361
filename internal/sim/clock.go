package sim

import (
	"fmt"
	"math"
)

// Clock steps simulation time over a fixed-length run. The current time is
// always derived as start + dt·step, so repeated advances accumulate no
// floating-point drift.
type Clock struct {
	start    float64
	end      float64
	dt       float64
	numSteps int
	step     int
}

// NewClock builds a clock for the interval [start, end]. Exactly one of
// numSteps and dt must be positive; the other is derived from the interval.
func NewClock(start, end float64, numSteps int, dt float64) (*Clock, error) {
	if end <= start {
		return nil, fmt.Errorf("%w: end %v not after start %v", ErrBadClock, end, start)
	}
	switch {
	case numSteps > 0 && dt > 0:
		return nil, fmt.Errorf("%w: num_steps and dt are exclusive", ErrBadClock)
	case numSteps > 0:
		dt = (end - start) / float64(numSteps)
	case dt > 0:
		numSteps = int(math.Round((end - start) / dt))
		if numSteps < 1 {
			return nil, fmt.Errorf("%w: dt %v exceeds interval %v", ErrBadClock, dt, end-start)
		}
		dt = (end - start) / float64(numSteps)
	default:
		return nil, fmt.Errorf("%w: need num_steps or dt", ErrBadClock)
	}
	return &Clock{start: start, end: end, dt: dt, numSteps: numSteps}, nil
}

// Running reports whether any steps remain.
func (c *Clock) Running() bool { return c.step < c.numSteps }

// Advance moves the clock forward one step.
func (c *Clock) Advance() { c.step++ }

// Time returns the current simulation time.
func (c *Clock) Time() float64 { return c.start + c.dt*float64(c.step) }

// Dt returns the fixed step size.
func (c *Clock) Dt() float64 { return c.dt }

// Step returns the number of completed steps.
func (c *Clock) Step() int { return c.step }

// NumSteps returns the total step count of the run.
func (c *Clock) NumSteps() int { return c.numSteps }

// Start returns the start time of the run.
func (c *Clock) Start() float64 { return c.start }

// End returns the end time of the run.
func (c *Clock) End() float64 { return c.end }
