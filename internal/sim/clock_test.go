package sim

import (
	"errors"
	"math"
	"testing"
)

func TestClockFromNumSteps(t *testing.T) {
	c, err := NewClock(0, 1, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if c.Dt() != 0.5 {
		t.Errorf("expected dt 0.5, got %v", c.Dt())
	}
	if c.NumSteps() != 2 {
		t.Errorf("expected 2 steps, got %d", c.NumSteps())
	}
	if c.Time() != 0 {
		t.Errorf("expected time 0 before any advance, got %v", c.Time())
	}

	c.Advance()
	if c.Time() != 0.5 {
		t.Errorf("expected time 0.5 after one advance, got %v", c.Time())
	}
	if !c.Running() {
		t.Error("clock should still be running after one of two steps")
	}

	c.Advance()
	if c.Time() != 1.0 {
		t.Errorf("expected time 1.0 at end, got %v", c.Time())
	}
	if c.Running() {
		t.Error("clock should have stopped after two steps")
	}
}

func TestClockFromDt(t *testing.T) {
	c, err := NewClock(0, 1, 0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if c.NumSteps() != 4 {
		t.Errorf("expected 4 derived steps, got %d", c.NumSteps())
	}
	if c.Dt() != 0.25 {
		t.Errorf("expected dt 0.25, got %v", c.Dt())
	}
}

func TestClockDtRounding(t *testing.T) {
	// 1/0.3 rounds to 3 steps; dt is recomputed so the run lands on end.
	c, err := NewClock(0, 1, 0, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if c.NumSteps() != 3 {
		t.Errorf("expected 3 steps, got %d", c.NumSteps())
	}
	if math.Abs(c.Dt()-1.0/3.0) > 1e-15 {
		t.Errorf("expected dt 1/3, got %v", c.Dt())
	}
}

func TestClockNoDrift(t *testing.T) {
	c, err := NewClock(0, 2, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	for c.Running() {
		c.Advance()
	}
	if c.Time() != 2.0 {
		t.Errorf("expected exact end time 2.0, got %v", c.Time())
	}
	if c.Step() != 4 {
		t.Errorf("expected 4 completed steps, got %d", c.Step())
	}
}

func TestClockErrors(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		numSteps int
		dt       float64
	}{
		{"end before start", 1, 0, 2, 0},
		{"end equals start", 1, 1, 2, 0},
		{"both num_steps and dt", 0, 1, 2, 0.5},
		{"neither num_steps nor dt", 0, 1, 0, 0},
		{"dt exceeds interval", 0, 1, 0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClock(tt.start, tt.end, tt.numSteps, tt.dt)
			if !errors.Is(err, ErrBadClock) {
				t.Errorf("expected ErrBadClock, got %v", err)
			}
		})
	}
}
