package analysis

import "strings"

// PhasePortrait renders xs against ys as an ASCII scatter, one dot per
// sample, with axes drawn where they cross the window. Recorded position
// and momentum components are the intended inputs. Series of unequal
// length are truncated to the shorter; fewer than two samples give an
// empty string.
func PhasePortrait(xs, ys []float64, width, height int) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := bounds(xs[:n])
	minY, maxY := bounds(ys[:n])
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)
	rangeX := maxX - minX
	rangeY := maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := 0; i < n; i++ {
		col := int((xs[i] - minX) / rangeX * float64(width-1))
		row := height - 1 - int((ys[i]-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func bounds(data []float64) (min, max float64) {
	min, max = data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// pad widens a range by 10% on each side so extreme samples sit inside
// the window. A degenerate range is widened to unit size first.
func pad(min, max float64) (float64, float64) {
	r := max - min
	if r == 0 {
		r = 1
	}
	return min - r*0.1, max + r*0.1
}
