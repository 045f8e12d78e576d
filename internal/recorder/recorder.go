package recorder

import "time"

// Sheet processing statuses.
const (
	StatusOK                  = "OK"
	StatusSchemaError         = "SCHEMA_ERROR"
	StatusInsufficientHistory = "INSUFFICIENT_HISTORY"
	StatusReadError           = "READ_ERROR"
	StatusWriteError          = "WRITE_ERROR"
)

// SheetRecord holds one sheet's outcome within a run.
type SheetRecord struct {
	Sheet      string
	Status     string
	RowsTotal  int
	RowsPriced int
	// Latest decisions, empty unless Status is OK.
	MMDecision   string
	BolDecision  string
	MACDDecision string
	RSIDecision  string
	StocDecision string
	Error        string
}

// RunSummary holds one full run over all sheets.
type RunSummary struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	SheetsTotal  int
	SheetsOK     int
	SheetsFailed int
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(run *RunSummary) error
	RecordSheet(rec *SheetRecord) error
	Close() error
}
