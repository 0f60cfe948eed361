package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the Fourier
// transform of data. Any input length is accepted.
func PowerSpectrum(data []float64) []float64 {
	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantFrequency returns the frequency, in cycles per unit time, of the
// strongest non-DC spectral peak. dt is the sample interval. Zero is
// returned when the signal is too short to hold a peak.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	return float64(peak) / (float64(len(data)) * dt)
}
