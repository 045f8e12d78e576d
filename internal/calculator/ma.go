// Package calculator implements the numeric transforms of the decision
// engine. Every function consumes the cleaned price column of one
// series and produces per-row derived columns. A value is NaN while the
// calculation's trailing window is not yet full (the warm-up period) or
// when its denominator degenerates; NaN is never replaced by a default.
package calculator

import "math"

// Moving-average windows, shortest to longest. The longest drives the
// 50-row minimum series length enforced by the series preparer.
const (
	WindowMM5  = 5
	WindowMM10 = 10
	WindowMM20 = 20
	WindowMM50 = 50
)

// RollingMean computes the trailing simple moving average of values
// over the given window. Result[i] is NaN until the window ending at i
// is full, or when any value inside the window is NaN.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// MovingAverages computes the MM5, MM10, MM20 and MM50 columns.
func MovingAverages(prices []float64) (mm5, mm10, mm20, mm50 []float64) {
	mm5 = RollingMean(prices, WindowMM5)
	mm10 = RollingMean(prices, WindowMM10)
	mm20 = RollingMean(prices, WindowMM20)
	mm50 = RollingMean(prices, WindowMM50)
	return mm5, mm10, mm20, mm50
}
