package analysis

import (
	"math"
	"testing"
)

func sine(n, cycles int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(cycles) * float64(i) / float64(n))
	}
	return data
}

func TestPowerSpectrumPeakBin(t *testing.T) {
	data := sine(256, 8)
	ps := PowerSpectrum(data)

	if len(ps) != 128 {
		t.Fatalf("expected half-spectrum of 128 bins, got %d", len(ps))
	}

	peak := 0
	for i := range ps {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Errorf("spectral peak at bin %d, want 8", peak)
	}
}

func TestDominantFrequencyPhysicalUnits(t *testing.T) {
	// 8 cycles over 256 samples at dt = 0.5 span 128 time units, giving
	// a frequency of 8/128 cycles per unit time.
	data := sine(256, 8)

	f := DominantFrequency(data, 0.5)
	want := 8.0 / (256 * 0.5)
	if math.Abs(f-want) > 1e-12 {
		t.Errorf("dominant frequency = %v, want %v", f, want)
	}
}

func TestDominantFrequencyIgnoresDC(t *testing.T) {
	// A large constant offset must not pull the peak to bin zero.
	data := sine(128, 5)
	for i := range data {
		data[i] += 100
	}

	f := DominantFrequency(data, 1.0)
	want := 5.0 / 128
	if math.Abs(f-want) > 1e-12 {
		t.Errorf("dominant frequency = %v, want %v", f, want)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if f := DominantFrequency([]float64{1}, 1.0); f != 0 {
		t.Errorf("single sample should give 0, got %v", f)
	}
	if f := DominantFrequency(sine(64, 3), 0); f != 0 {
		t.Errorf("zero dt should give 0, got %v", f)
	}
	if f := DominantFrequency(nil, 1.0); f != 0 {
		t.Errorf("empty signal should give 0, got %v", f)
	}
}
