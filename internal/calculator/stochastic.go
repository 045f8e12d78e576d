package calculator

import "math"

const (
	// StochasticKWindow is the rolling high/low window of %K.
	StochasticKWindow = 20
	// StochasticDWindow is the %D smoothing window over %K.
	StochasticDWindow = 5
)

// Stochastic computes the %K and %D oscillator columns. %K compares the
// price against its rolling 20-row low/high range and is NaN while the
// window warms up or when the range is flat (high == low); %D is the
// 5-row simple moving average of %K and is NaN whenever its window
// contains a NaN %K.
func Stochastic(prices []float64) (percentK, percentD []float64) {
	percentK = make([]float64, len(prices))
	for i := range prices {
		if i < StochasticKWindow-1 {
			percentK[i] = math.NaN()
			continue
		}
		low := math.Inf(1)
		high := math.Inf(-1)
		for j := i - StochasticKWindow + 1; j <= i; j++ {
			if prices[j] < low {
				low = prices[j]
			}
			if prices[j] > high {
				high = prices[j]
			}
		}
		if high == low {
			percentK[i] = math.NaN()
			continue
		}
		percentK[i] = 100.0 * (prices[i] - low) / (high - low)
	}
	percentD = RollingMean(percentK, StochasticDWindow)
	return percentK, percentD
}
