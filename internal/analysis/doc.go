// Package analysis post-processes recorded diagnostic signals.
//
//   - [PowerSpectrum]: spectral magnitudes of a sampled signal
//   - [DominantFrequency]: strongest non-DC peak in physical units
//   - [PhasePortrait]: ASCII scatter of one recorded series against another
//
// # Example
//
//	rows, _ := diag.ReadCSV("momentum.csv")
//	signal := make([]float64, len(rows))
//	for i, row := range rows {
//	    signal[i] = row[1]
//	}
//	f := analysis.DominantFrequency(signal, clock.Dt())
package analysis
