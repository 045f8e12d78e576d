// Package assembler merges computed indicator rows back onto the
// original table. The computation series may have been reordered by
// date and stripped of unpriced rows; the output keeps the source row
// order and set, with blank indicator cells on rows that were dropped
// from the computation.
package assembler

import (
	"fmt"
	"math"

	"BourseSignal/internal/model"
)

// FormatValue renders a numeric cell: two decimal places, or empty text
// when the value is undefined. A NaN never leaks out as a sentinel.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

// Assemble appends the indicator columns to the original table rows.
// rows must be aligned with series.Records; series.Original drives the
// merge, fixing the output row set and order, while each record's Index
// routes computed values back to the source cells they came from.
func Assemble(series *model.PriceSeries, table *model.Table, rows []model.IndicatorRow) *model.ResultTable {
	computed := make(map[int]model.IndicatorRow, len(rows))
	for i, rec := range series.Records {
		computed[rec.Index] = rows[i]
	}

	headers := make([]string, 0, len(table.Headers)+len(model.IndicatorHeaders))
	headers = append(headers, table.Headers...)
	headers = append(headers, model.IndicatorHeaders...)

	out := make([][]string, 0, len(series.Original))
	for _, rec := range series.Original {
		row := make([]string, 0, len(headers))
		row = append(row, table.Rows[rec.Index]...)
		for len(row) < len(table.Headers) {
			row = append(row, "")
		}
		if ind, ok := computed[rec.Index]; ok {
			row = append(row, indicatorCells(&ind)...)
		} else {
			row = append(row, make([]string, len(model.IndicatorHeaders))...)
		}
		out = append(out, row)
	}

	return &model.ResultTable{Sheet: series.Sheet, Headers: headers, Rows: out}
}

// indicatorCells renders one computed row in the fixed column order.
func indicatorCells(ind *model.IndicatorRow) []string {
	return []string{
		FormatValue(ind.MM5),
		FormatValue(ind.MM10),
		FormatValue(ind.MM20),
		FormatValue(ind.MM50),
		string(ind.MMDecision),
		FormatValue(ind.BandeCentrale),
		FormatValue(ind.BandeInferieure),
		FormatValue(ind.BandeSuperieure),
		string(ind.BolDecision),
		FormatValue(ind.LigneMACD),
		FormatValue(ind.LigneSignal),
		FormatValue(ind.Histogramme),
		string(ind.MACDDecision),
		FormatValue(ind.RS),
		FormatValue(ind.RSI),
		string(ind.RSIDecision),
		FormatValue(ind.PercentK),
		FormatValue(ind.PercentD),
		string(ind.StocDecision),
	}
}
