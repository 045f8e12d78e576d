package strategy

import (
	"fmt"
	"math"
	"testing"

	"BourseSignal/internal/model"
)

func TestEvaluate_ConstantSeries(t *testing.T) {
	prices := make([]float64, 60)
	for i := range prices {
		prices[i] = 4500
	}
	rows := Evaluate(prices)
	if len(rows) != 60 {
		t.Fatalf("expected 60 rows, got %d", len(rows))
	}

	last := rows[len(rows)-1]
	if last.MM5 != 4500 || last.MM10 != 4500 || last.MM20 != 4500 || last.MM50 != 4500 {
		t.Error("moving averages of a constant series must equal the price")
	}
	if last.BandeInferieure != 4500 || last.BandeSuperieure != 4500 {
		t.Error("Bollinger bands must collapse to the price")
	}
	if last.MMDecision != model.DecisionSell {
		t.Errorf("MM decision: got %q, want %q (no strict ordering holds)", last.MMDecision, model.DecisionSell)
	}
	if last.BolDecision != model.DecisionNeutral {
		t.Errorf("Bollinger decision: got %q, want %q", last.BolDecision, model.DecisionNeutral)
	}
	if last.MACDDecision != model.DecisionNeutral {
		t.Errorf("MACD decision: got %q, want %q", last.MACDDecision, model.DecisionNeutral)
	}
	// Flat series: RSI and the oscillator are degenerate, both wait.
	if last.RSIDecision != model.DecisionWait {
		t.Errorf("RSI decision: got %q, want %q", last.RSIDecision, model.DecisionWait)
	}
	if last.StocDecision != model.DecisionWait {
		t.Errorf("stochastic decision: got %q, want %q", last.StocDecision, model.DecisionWait)
	}
}

func TestEvaluate_MonotonicIncrease(t *testing.T) {
	prices := make([]float64, 60)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	rows := Evaluate(prices)

	for i := 49; i < 60; i++ {
		r := rows[i]
		if !(r.MM5 > r.MM10 && r.MM10 > r.MM20 && r.MM20 > r.MM50) {
			t.Fatalf("row %d: expected MM5 > MM10 > MM20 > MM50", i)
		}
		if r.MMDecision != model.DecisionBuy {
			t.Fatalf("row %d: MM decision %q, want %q", i, r.MMDecision, model.DecisionBuy)
		}
	}
	last := rows[len(rows)-1]
	if last.StocDecision != model.DecisionOverbought {
		t.Errorf("stochastic decision: got %q, want %q", last.StocDecision, model.DecisionOverbought)
	}
	if last.Histogramme <= 0 {
		t.Errorf("histogram should be positive on a rising series, got %v", last.Histogramme)
	}
}

func TestEvaluate_RSITrendsHigh(t *testing.T) {
	// Mostly rising with small dips so the smoothed loss stays nonzero
	// and the index is defined.
	prices := make([]float64, 60)
	prices[0] = 100
	for i := 1; i < 60; i++ {
		if i%7 == 0 {
			prices[i] = prices[i-1] - 1
		} else {
			prices[i] = prices[i-1] + 3
		}
	}
	rows := Evaluate(prices)
	last := rows[len(rows)-1]
	if math.IsNaN(last.RSI) {
		t.Fatal("RSI undefined at end of series")
	}
	if last.RSI < 70 {
		t.Errorf("RSI = %v, expected well above 70 on a rising series", last.RSI)
	}
	if last.RSI > 100 {
		t.Errorf("RSI = %v exceeds 100", last.RSI)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	prices := []float64{100, 102, 99, 104, 103, 108, 105, 111, 109, 114}
	for len(prices) < 60 {
		prices = append(prices, prices[len(prices)-10]+5)
	}
	first := Evaluate(prices)
	second := Evaluate(prices)
	for i := range first {
		// Compare rendered rows: NaN is not equal to itself, but two
		// undefined cells are the same result.
		if fmt.Sprintf("%v", first[i]) != fmt.Sprintf("%v", second[i]) {
			t.Fatalf("row %d differs between identical evaluations", i)
		}
	}
}
