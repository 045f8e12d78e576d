package strategy

import (
	"BourseSignal/internal/calculator"
	"BourseSignal/internal/model"
)

// Evaluate runs the five calculators over the cleaned price column and
// applies each one's decision rule, producing one IndicatorRow per
// price. The calculators are independent of each other; only the rules
// for MACD, RSI and the stochastic oscillator carry state from the
// previous row, which Evaluate handles by labelling whole columns in a
// single ordered pass.
func Evaluate(prices []float64) []model.IndicatorRow {
	mm5, mm10, mm20, mm50 := calculator.MovingAverages(prices)
	central, lower, upper := calculator.BollingerBands(prices)
	fast, slow, macdLine, signalLine, histogram := calculator.MACD(prices)
	rs, rsi := calculator.RSI(prices)
	percentK, percentD := calculator.Stochastic(prices)

	macdDecisions := MACDDecisions(histogram)
	rsiDecisions := RSIDecisions(rsi)
	stochDecisions := StochasticDecisions(percentK, percentD)

	rows := make([]model.IndicatorRow, len(prices))
	for i := range prices {
		rows[i] = model.IndicatorRow{
			MM5:  mm5[i],
			MM10: mm10[i],
			MM20: mm20[i],
			MM50: mm50[i],

			BandeCentrale:   central[i],
			BandeInferieure: lower[i],
			BandeSuperieure: upper[i],

			MMEFast:     fast[i],
			MMESlow:     slow[i],
			LigneMACD:   macdLine[i],
			LigneSignal: signalLine[i],
			Histogramme: histogram[i],

			RS:  rs[i],
			RSI: rsi[i],

			PercentK: percentK[i],
			PercentD: percentD[i],

			MMDecision:   MADecision(prices[i], mm5[i], mm10[i], mm20[i], mm50[i]),
			BolDecision:  BollingerDecision(prices[i], lower[i], upper[i]),
			MACDDecision: macdDecisions[i],
			RSIDecision:  rsiDecisions[i],
			StocDecision: stochDecisions[i],
		}
	}
	return rows
}
