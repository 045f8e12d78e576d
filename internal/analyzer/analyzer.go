package analyzer

import (
	"fmt"

	"BourseSignal/internal/assembler"
	"BourseSignal/internal/model"
	"BourseSignal/internal/series"
	"BourseSignal/internal/source"
	"BourseSignal/internal/strategy"
)

// Result summarizes one sheet's analysis for recording and reporting.
type Result struct {
	Sheet      string
	Table      *model.ResultTable
	RowsTotal  int
	RowsPriced int
	// Latest holds the computed values of the series' last row, i.e.
	// the most recent observation after date ordering.
	Latest model.IndicatorRow
}

// Analyzer orchestrates one sheet end to end: read the table, prepare
// the series, compute indicators and decisions, assemble the output.
// It holds no per-sheet state, so one Analyzer serves every sheet of a
// run, and distinct series could be analyzed concurrently by a caller.
type Analyzer struct {
	Source   source.Source
	Preparer *series.Preparer
}

// New creates an Analyzer reading from src and parsing the given
// price/date columns.
func New(src source.Source, priceColumn, dateColumn string) *Analyzer {
	return &Analyzer{
		Source:   src,
		Preparer: series.NewPreparer(priceColumn, dateColumn),
	}
}

// Analyze processes a single sheet and returns its annotated table. The
// write-back is left to the caller so a run can decide what to do with
// failures before touching the source.
func (a *Analyzer) Analyze(sheet string) (*Result, error) {
	table, err := a.Source.ReadTable(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}

	ps, err := a.Preparer.Prepare(sheet, table)
	if err != nil {
		return nil, err
	}

	rows := strategy.Evaluate(ps.Prices())
	result := &Result{
		Sheet:      sheet,
		Table:      assembler.Assemble(ps, table, rows),
		RowsTotal:  len(table.Rows),
		RowsPriced: len(ps.Records),
		Latest:     rows[len(rows)-1],
	}
	return result, nil
}
