package model

// IndicatorRow holds every computed field for one record of the
// computation series. Any float is NaN during the owning calculator's
// warm-up period or when its denominator degenerated.
type IndicatorRow struct {
	MM5  float64
	MM10 float64
	MM20 float64
	MM50 float64

	BandeCentrale   float64
	BandeInferieure float64
	BandeSuperieure float64

	MMEFast     float64
	MMESlow     float64
	LigneMACD   float64
	LigneSignal float64
	Histogramme float64

	RS  float64
	RSI float64

	PercentK float64
	PercentD float64

	MMDecision   Decision
	BolDecision  Decision
	MACDDecision Decision
	RSIDecision  Decision
	StocDecision Decision
}

// IndicatorHeaders is the fixed order of the appended output columns.
// The lower band precedes the upper band, matching the band decision's
// buy-at-lower / sell-at-upper orientation.
var IndicatorHeaders = []string{
	"MM5", "MM10", "MM20", "MM50", "MMdecision",
	"Bande_centrale", "Bande_Inferieure", "Bande_Supérieure", "Boldecision",
	"Ligne_MACD", "Ligne_de_signal", "Histogramme", "MACDdecision",
	"RS", "RSI", "RSIdecision",
	"%K", "%D", "Stocdecision",
}

// ResultTable is the final output for one sheet: the original rows in
// their original order with the indicator columns appended.
type ResultTable struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}
