package calculator

import "math"

const (
	// BollingerWindow is the rolling window of the central band.
	BollingerWindow = 35
	// BollingerWidth is the band half-width in standard deviations.
	BollingerWidth = 2.0
)

// BollingerBands computes the central band (rolling mean), and the
// lower/upper bands at ±BollingerWidth population standard deviations.
// All three columns are NaN during the warm-up of the 35-row window.
func BollingerBands(prices []float64) (central, lower, upper []float64) {
	central = RollingMean(prices, BollingerWindow)
	lower = make([]float64, len(prices))
	upper = make([]float64, len(prices))
	for i := range prices {
		if i < BollingerWindow-1 {
			lower[i] = math.NaN()
			upper[i] = math.NaN()
			continue
		}
		mean := central[i]
		sumSq := 0.0
		for j := i - BollingerWindow + 1; j <= i; j++ {
			d := prices[j] - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(BollingerWindow))
		lower[i] = mean - BollingerWidth*std
		upper[i] = mean + BollingerWidth*std
	}
	return central, lower, upper
}
