package strategy

import (
	"math"
	"testing"

	"BourseSignal/internal/model"
)

var nan = math.NaN()

func TestMADecision(t *testing.T) {
	tests := []struct {
		name                         string
		price, mm5, mm10, mm20, mm50 float64
		want                         model.Decision
	}{
		{"warm-up", 100, nan, 99, 98, 97, model.DecisionWait},
		{"price above short averages", 105, 104, 103, 90, 95, model.DecisionBuy},
		{"middle triple ordered", 90, 104, 103, 102, 95, model.DecisionBuy},
		{"long triple ordered", 90, 95, 104, 103, 102, model.DecisionBuy},
		{"no ordered triple", 90, 95, 100, 98, 99, model.DecisionSell},
		{"all equal", 100, 100, 100, 100, 100, model.DecisionSell},
	}
	for _, tt := range tests {
		if got := MADecision(tt.price, tt.mm5, tt.mm10, tt.mm20, tt.mm50); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBollingerDecision(t *testing.T) {
	tests := []struct {
		name                string
		price, lower, upper float64
		want                model.Decision
	}{
		{"warm-up", 100, nan, nan, model.DecisionWait},
		{"below lower band", 89, 90, 110, model.DecisionBuy},
		{"touching lower band", 90, 90, 110, model.DecisionBuy},
		{"touching upper band", 110, 90, 110, model.DecisionSell},
		{"above upper band", 111, 90, 110, model.DecisionSell},
		{"inside the bands", 100, 90, 110, model.DecisionNeutral},
		{"collapsed bands", 100, 100, 100, model.DecisionNeutral},
	}
	for _, tt := range tests {
		if got := BollingerDecision(tt.price, tt.lower, tt.upper); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMACDDecisions_Crossings(t *testing.T) {
	histogram := []float64{0, -1, -0.5, 0.5, 1, -0.2, 0, 0.3}
	want := []model.Decision{
		model.DecisionNeutral,    // first row, previous defaults to 0, value 0
		model.DecisionStrongSell, // 0 -> -1 downward crossing
		model.DecisionSell,       // stays negative
		model.DecisionStrongBuy,  // -0.5 -> 0.5 upward crossing
		model.DecisionBuy,        // stays positive
		model.DecisionStrongSell, // 1 -> -0.2 downward crossing
		model.DecisionNeutral,    // exactly zero
		model.DecisionStrongBuy,  // 0 -> 0.3 upward crossing
	}
	got := MACDDecisions(histogram)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMACDDecisions_StrongOnlyAtCrossing(t *testing.T) {
	histogram := []float64{-2, -1, 1, 2, 3, 4}
	got := MACDDecisions(histogram)
	strong := 0
	for i, d := range got {
		if d == model.DecisionStrongBuy {
			strong++
			if i != 2 {
				t.Errorf("strong buy at row %d, want row 2", i)
			}
		}
	}
	if strong != 1 {
		t.Errorf("expected exactly one strong buy for one crossing, got %d", strong)
	}
}

func TestMACDDecisions_UndefinedInput(t *testing.T) {
	got := MACDDecisions([]float64{nan, 1, 2})
	if got[0] != model.DecisionWait || got[1] != model.DecisionWait {
		t.Errorf("rows touching NaN must wait, got %q %q", got[0], got[1])
	}
	if got[2] != model.DecisionBuy {
		t.Errorf("row 2: got %q, want %q", got[2], model.DecisionBuy)
	}
}

func TestRSIDecisions(t *testing.T) {
	rsi := []float64{nan, 25, 28, 32, 50, 72, 75, 68, 65}
	want := []model.Decision{
		model.DecisionWait,    // undefined
		model.DecisionWait,    // previous undefined
		model.DecisionNeutral, // inside oversold band, no exit
		model.DecisionBuy,     // upward exit from oversold
		model.DecisionNeutral,
		model.DecisionNeutral, // entering overbought is not a signal
		model.DecisionNeutral, // residence in overbought
		model.DecisionSell,    // downward exit from overbought
		model.DecisionNeutral,
	}
	got := RSIDecisions(rsi)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d (RSI %v): got %q, want %q", i, rsi[i], got[i], want[i])
		}
	}
}

func TestStochasticDecisions_Precedence(t *testing.T) {
	tests := []struct {
		name                     string
		prevK, prevD, curK, curD float64
		want                     model.Decision
	}{
		{"undefined current", 50, 50, nan, 50, model.DecisionWait},
		{"strong buy: cross up in oversold", 10, 12, 18, 15, model.DecisionStrongBuy},
		{"strong sell: cross down in overbought", 90, 88, 82, 85, model.DecisionStrongSell},
		{"plain cross up", 40, 45, 55, 50, model.DecisionBuy},
		{"plain cross down", 60, 55, 45, 50, model.DecisionSell},
		{"overbought residence", 90, 85, 92, 86, model.DecisionOverbought},
		{"oversold residence", 10, 15, 8, 14, model.DecisionOversold},
		{"neutral", 40, 45, 42, 44, model.DecisionNeutral},
	}
	for _, tt := range tests {
		got := StochasticDecisions(
			[]float64{tt.prevK, tt.curK},
			[]float64{tt.prevD, tt.curD},
		)
		if got[0] != model.DecisionWait {
			t.Errorf("%s: first row must wait, got %q", tt.name, got[0])
		}
		if got[1] != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got[1], tt.want)
		}
	}
}

func TestStochasticDecisions_CrossBeatsResidence(t *testing.T) {
	// Cross down while %D is still above 80 must report the strong
	// sell, not overbought residence.
	got := StochasticDecisions([]float64{95, 80}, []float64{90, 85})
	if got[1] != model.DecisionStrongSell {
		t.Errorf("got %q, want %q", got[1], model.DecisionStrongSell)
	}
}
