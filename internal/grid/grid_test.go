package grid

import (
	"errors"
	"math"
	"testing"
)

func TestNewSpansExtent(t *testing.T) {
	g, err := New(20, 30, 10)
	if err != nil {
		t.Fatal(err)
	}

	r := g.R()
	if len(r) != 10 {
		t.Fatalf("expected 10 points, got %d", len(r))
	}
	if r[0] != 20 {
		t.Errorf("first point = %v, want 20", r[0])
	}
	if r[9] != 30 {
		t.Errorf("last point = %v, want 30", r[9])
	}

	dx := g.Dx()
	if math.Abs(dx-10.0/9.0) > 1e-15 {
		t.Errorf("Dx = %v, want 10/9", dx)
	}
	for i := 1; i < len(r); i++ {
		if math.Abs(r[i]-r[i-1]-dx) > 1e-12 {
			t.Errorf("uneven spacing at %d: %v", i, r[i]-r[i-1])
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
		n    int
	}{
		{"too few points", 0, 1, 1},
		{"max below min", 1, 0, 10},
		{"max equals min", 1, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.min, tt.max, tt.n); !errors.Is(err, ErrBadExtent) {
				t.Errorf("expected ErrBadExtent, got %v", err)
			}
		})
	}
}

func TestGenerateField(t *testing.T) {
	g, err := New(0, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	field := g.GenerateField()
	if len(field) != 8 {
		t.Fatalf("field length %d, want 8", len(field))
	}
	for i, v := range field {
		if v != 0 {
			t.Errorf("field[%d] = %v, want 0", i, v)
		}
	}
}

func TestInterpolatorLinearField(t *testing.T) {
	g, err := New(20, 30, 10)
	if err != nil {
		t.Fatal(err)
	}

	// Linear interpolation is exact on a linear field, so sampling the
	// point array itself must return the position.
	for _, x := range []float64{20, 22.3, 25, 29.999, 30} {
		interp, err := g.Interpolator(x)
		if err != nil {
			t.Fatalf("Interpolator(%v): %v", x, err)
		}
		got := interp(g.R())
		if math.Abs(got-x) > 1e-12 {
			t.Errorf("interp(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestInterpolatorEndpoints(t *testing.T) {
	g, err := New(0, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	field := []float64{3, 0, 0, 0, 7}

	lo, err := g.Interpolator(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := lo(field); got != 3 {
		t.Errorf("interp at min = %v, want 3", got)
	}

	hi, err := g.Interpolator(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := hi(field); got != 7 {
		t.Errorf("interp at max = %v, want 7", got)
	}
}

func TestInterpolatorOutOfRange(t *testing.T) {
	g, err := New(20, 30, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{19.999, 30.001, -5} {
		if _, err := g.Interpolator(x); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Interpolator(%v): expected ErrOutOfRange, got %v", x, err)
		}
	}
}
