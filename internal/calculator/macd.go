package calculator

// MACD exponential-moving-average spans.
const (
	SpanMACDFast   = 12
	SpanMACDSlow   = 26
	SpanMACDSignal = 9
)

// EMA computes the exponential moving average of values with smoothing
// factor 2/(span+1), seeded with the first value. With this seeding the
// column is defined from the first row on; there is no warm-up NaN.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD computes the fast and slow EMAs, the MACD line (fast − slow),
// the signal line (EMA of the MACD line) and the histogram (MACD line −
// signal line).
func MACD(prices []float64) (fast, slow, line, signal, histogram []float64) {
	fast = EMA(prices, SpanMACDFast)
	slow = EMA(prices, SpanMACDSlow)
	line = make([]float64, len(prices))
	for i := range line {
		line[i] = fast[i] - slow[i]
	}
	signal = EMA(line, SpanMACDSignal)
	histogram = make([]float64, len(prices))
	for i := range histogram {
		histogram[i] = line[i] - signal[i]
	}
	return fast, slow, line, signal, histogram
}
