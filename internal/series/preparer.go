// Package series turns a raw sheet table into a validated price series.
//
// Parsing is total: a cell either yields a number or NaN, never an
// error. The only failures this package reports are structural — a
// missing price column, or too few priced rows to feed the longest
// indicator window.
package series

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"BourseSignal/internal/model"
)

// MinRecords is the minimum number of priced rows required before any
// indicator is computed, driven by the 50-row long moving average.
const MinRecords = 50

var (
	// ErrNoPriceColumn reports a table without the configured price column.
	ErrNoPriceColumn = errors.New("price column not found")
	// ErrInsufficientHistory reports fewer than MinRecords priced rows.
	ErrInsufficientHistory = errors.New("insufficient price history")
)

// Preparer validates and orders raw tables into price series.
type Preparer struct {
	PriceColumn string
	DateColumn  string
}

// NewPreparer creates a Preparer for the given column names. DateColumn
// may be empty when the source has no date column.
func NewPreparer(priceColumn, dateColumn string) *Preparer {
	return &Preparer{PriceColumn: priceColumn, DateColumn: dateColumn}
}

// Prepare parses the table into a PriceSeries. Every row is parsed and
// kept in Original (source order); Records holds only priced rows,
// sorted ascending by date when dates exist. Rows whose date cell does
// not parse sort after all dated rows, keeping their relative order.
func (p *Preparer) Prepare(sheet string, table *model.Table) (*model.PriceSeries, error) {
	priceIdx := table.ColumnIndex(p.PriceColumn)
	if priceIdx < 0 {
		return nil, fmt.Errorf("%w: %q (sheet %s)", ErrNoPriceColumn, p.PriceColumn, sheet)
	}
	dateIdx := -1
	if p.DateColumn != "" {
		dateIdx = table.ColumnIndex(p.DateColumn)
	}

	original := make([]model.PriceRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec := model.PriceRecord{Index: i, Price: math.NaN()}
		if priceIdx < len(row) {
			rec.Raw = row[priceIdx]
			rec.Price = ParsePrice(row[priceIdx])
		}
		if dateIdx >= 0 && dateIdx < len(row) {
			rec.Date, rec.HasDate = ParseDate(row[dateIdx])
		}
		original = append(original, rec)
	}

	records := make([]model.PriceRecord, 0, len(original))
	for _, rec := range original {
		if !math.IsNaN(rec.Price) {
			records = append(records, rec)
		}
	}
	if dateIdx >= 0 {
		sort.SliceStable(records, func(a, b int) bool {
			ra, rb := records[a], records[b]
			if ra.HasDate != rb.HasDate {
				return ra.HasDate // undated rows last
			}
			if !ra.HasDate {
				return false
			}
			return ra.Date.Before(rb.Date)
		})
	}

	if len(records) < MinRecords {
		return nil, fmt.Errorf("%w: %d priced rows, need %d (sheet %s)",
			ErrInsufficientHistory, len(records), MinRecords, sheet)
	}

	return &model.PriceSeries{Sheet: sheet, Records: records, Original: original}, nil
}
