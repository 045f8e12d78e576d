package calculator

import "math"

// RSIPeriod is the smoothing period of the gain/loss averages.
const RSIPeriod = 20

// RSI computes the relative strength (RS) and relative strength index
// columns. Gains and losses over successive price differences are
// smoothed exponentially with factor 1/RSIPeriod, seeded by the first
// difference. Row 0 has no predecessor, so both columns start NaN. RS
// is NaN whenever the smoothed loss is exactly zero; the index inherits
// that, it never becomes infinite.
func RSI(prices []float64) (rs, rsi []float64) {
	rs = make([]float64, len(prices))
	rsi = make([]float64, len(prices))
	if len(prices) == 0 {
		return rs, rsi
	}
	rs[0] = math.NaN()
	rsi[0] = math.NaN()

	alpha := 1.0 / float64(RSIPeriod)
	var avgGain, avgLoss float64
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		if i == 1 {
			avgGain = gain
			avgLoss = loss
		} else {
			avgGain = alpha*gain + (1-alpha)*avgGain
			avgLoss = alpha*loss + (1-alpha)*avgLoss
		}
		if avgLoss == 0 {
			rs[i] = math.NaN()
			rsi[i] = math.NaN()
			continue
		}
		rs[i] = avgGain / avgLoss
		rsi[i] = 100.0 - 100.0/(1.0+rs[i])
	}
	return rs, rsi
}
