// Package export renders recorded series into standalone documents.
package export

import (
	"fmt"
	"strings"
)

// Trajectory renders xs against ys as a single SVG polyline on a dark
// background. The viewport is padded by 10% of the data range on each
// side. Series of unequal length are truncated to the shorter; fewer
// than two samples give an empty string.
func Trajectory(xs, ys []float64, width, height int, stroke string) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := span(xs[:n])
	minY, maxY := span(ys[:n])
	rangeX := maxX - minX
	rangeY := maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke))

	for i := 0; i < n; i++ {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func span(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	r := max - min
	if r == 0 {
		r = 1
	}
	return min - r*0.1, max + r*0.1
}
