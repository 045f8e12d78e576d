package model

import "time"

// Table holds one sheet's raw cell values: a header row and data rows,
// everything as text exactly as the source returned it.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// PriceRecord is one source row after parsing. Index points back at the
// row's position in the original table so computed columns can be merged
// onto the original order. Price is NaN when the raw cell was unparseable.
type PriceRecord struct {
	Index   int
	Date    time.Time
	HasDate bool
	Raw     string
	Price   float64
}

// PriceSeries is the validated computation series: records sorted
// ascending by date where dates exist, records without a usable price
// excluded. Records holds the series itself; Original keeps every parsed
// row in source order for the merge-back step.
type PriceSeries struct {
	Sheet    string
	Records  []PriceRecord
	Original []PriceRecord
}

// Prices extracts the cleaned price column from the series.
func (s *PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s.Records))
	for i, r := range s.Records {
		prices[i] = r.Price
	}
	return prices
}
