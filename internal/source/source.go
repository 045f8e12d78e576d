package source

import "BourseSignal/internal/model"

// Source defines the interface for reading and annotating sheet tables.
type Source interface {
	ListSheets() ([]string, error)
	ReadTable(sheet string) (*model.Table, error)
	WriteTable(sheet string, table *model.ResultTable) error
	Name() string
}
