// Package grid provides the uniform 1-D spatial discretization shared by
// field and particle modules: the point array, zeroed field allocation,
// and fixed-position linear interpolation.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrBadExtent reports an unusable grid specification.
var ErrBadExtent = errors.New("grid: bad extent")

// ErrOutOfRange reports a position outside the grid.
var ErrOutOfRange = errors.New("grid: position out of range")

// Grid is a uniform set of n points spanning [min, max]. The point array is
// built once and never reallocated; callers treat it as read-only.
type Grid struct {
	min float64
	max float64
	n   int
	r   []float64
}

// New builds a grid of n points spanning [min, max]. n must be at least 2
// and max must exceed min.
func New(min, max float64, n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrBadExtent, n)
	}
	if max <= min {
		return nil, fmt.Errorf("%w: max %v not above min %v", ErrBadExtent, max, min)
	}
	return &Grid{
		min: min,
		max: max,
		n:   n,
		r:   floats.Span(make([]float64, n), min, max),
	}, nil
}

// N returns the number of grid points.
func (g *Grid) N() int { return g.n }

// Min returns the lower grid bound.
func (g *Grid) Min() float64 { return g.min }

// Max returns the upper grid bound.
func (g *Grid) Max() float64 { return g.max }

// Dx returns the point spacing.
func (g *Grid) Dx() float64 { return (g.max - g.min) / float64(g.n-1) }

// R returns the grid point array.
func (g *Grid) R() []float64 { return g.r }

// GenerateField allocates a zeroed buffer indexed like the point array.
func (g *Grid) GenerateField() []float64 { return make([]float64, g.n) }

// Interpolator returns a closure that linearly interpolates any field
// buffer at the fixed position x. The bracketing points and weight are
// resolved once, so sampling is two loads and a blend.
func (g *Grid) Interpolator(x float64) (func(field []float64) float64, error) {
	if x < g.min || x > g.max {
		return nil, fmt.Errorf("%w: %v outside [%v, %v]", ErrOutOfRange, x, g.min, g.max)
	}
	i := int((x - g.min) / g.Dx())
	if i > g.n-2 {
		i = g.n - 2
	}
	w := (x - g.r[i]) / g.Dx()
	return func(field []float64) float64 {
		return (1-w)*field[i] + w*field[i+1]
	}, nil
}
