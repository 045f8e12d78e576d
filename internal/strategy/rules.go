// Package strategy converts indicator values into categorical trading
// labels. The moving-average and Bollinger rules look at the current
// row only; the MACD, RSI and stochastic rules also compare against the
// previous row, so those run as an explicit left-to-right scan over the
// whole series rather than as independent per-row lookups.
package strategy

import (
	"math"

	"BourseSignal/internal/model"
)

// RSI exit thresholds.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// Stochastic residence thresholds on %D.
const (
	stochOversold   = 20.0
	stochOverbought = 80.0
)

// MADecision labels one row from its price and four moving averages.
// Any one ordered triple signals a buy; absence of ordering is a sell,
// there is no neutral outcome for this rule.
func MADecision(price, mm5, mm10, mm20, mm50 float64) model.Decision {
	if anyNaN(price, mm5, mm10, mm20, mm50) {
		return model.DecisionWait
	}
	if (price > mm5 && mm5 > mm10) ||
		(mm5 > mm10 && mm10 > mm20) ||
		(mm10 > mm20 && mm20 > mm50) {
		return model.DecisionBuy
	}
	return model.DecisionSell
}

// BollingerDecision labels one row from its price and band edges. A
// price exactly on a band counts as touching it.
func BollingerDecision(price, lower, upper float64) model.Decision {
	if anyNaN(price, lower, upper) {
		return model.DecisionWait
	}
	switch {
	case price <= lower && price >= upper:
		// Zero-width bands (flat window): touching both edges at once
		// carries no signal.
		return model.DecisionNeutral
	case price <= lower:
		return model.DecisionBuy
	case price >= upper:
		return model.DecisionSell
	default:
		return model.DecisionNeutral
	}
}

// MACDDecisions labels every row from the histogram column. A zero-line
// crossing beats the plain sign of the histogram, so the crossing
// checks run first. The very first row has no predecessor; its previous
// histogram defaults to zero.
func MACDDecisions(histogram []float64) []model.Decision {
	out := make([]model.Decision, len(histogram))
	for i, cur := range histogram {
		prev := 0.0
		if i > 0 {
			prev = histogram[i-1]
		}
		if anyNaN(cur, prev) {
			out[i] = model.DecisionWait
			continue
		}
		switch {
		case prev <= 0 && cur > 0:
			out[i] = model.DecisionStrongBuy
		case prev >= 0 && cur < 0:
			out[i] = model.DecisionStrongSell
		case cur > 0:
			out[i] = model.DecisionBuy
		case cur < 0:
			out[i] = model.DecisionSell
		default:
			out[i] = model.DecisionNeutral
		}
	}
	return out
}

// RSIDecisions labels every row from the RSI column. Only an upward
// exit from the oversold band or a downward exit from the overbought
// band signals; residence inside a band does not.
func RSIDecisions(rsi []float64) []model.Decision {
	out := make([]model.Decision, len(rsi))
	for i, cur := range rsi {
		if i == 0 || anyNaN(cur, rsi[i-1]) {
			out[i] = model.DecisionWait
			continue
		}
		prev := rsi[i-1]
		switch {
		case prev <= rsiOversold && cur > rsiOversold:
			out[i] = model.DecisionBuy
		case prev >= rsiOverbought && cur < rsiOverbought:
			out[i] = model.DecisionSell
		default:
			out[i] = model.DecisionNeutral
		}
	}
	return out
}

// StochasticDecisions labels every row from the %K and %D columns, in
// strict precedence: %K/%D crossings inside the extreme bands, then
// plain crossings, then residence in a band, then neutral.
func StochasticDecisions(percentK, percentD []float64) []model.Decision {
	out := make([]model.Decision, len(percentK))
	for i := range percentK {
		if i == 0 {
			out[i] = model.DecisionWait
			continue
		}
		curK, curD := percentK[i], percentD[i]
		prevK, prevD := percentK[i-1], percentD[i-1]
		if anyNaN(curK, curD, prevK, prevD) {
			out[i] = model.DecisionWait
			continue
		}
		crossUp := prevK <= prevD && curK > curD
		crossDown := prevK >= prevD && curK < curD
		switch {
		case crossUp && curD < stochOversold:
			out[i] = model.DecisionStrongBuy
		case crossDown && curD > stochOverbought:
			out[i] = model.DecisionStrongSell
		case crossUp:
			out[i] = model.DecisionBuy
		case crossDown:
			out[i] = model.DecisionSell
		case curD > stochOverbought:
			out[i] = model.DecisionOverbought
		case curD < stochOversold:
			out[i] = model.DecisionOversold
		default:
			out[i] = model.DecisionNeutral
		}
	}
	return out
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
