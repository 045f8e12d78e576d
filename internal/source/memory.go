package source

import (
	"fmt"

	"BourseSignal/internal/model"
)

// MemorySource returns controllable in-memory tables for development
// and testing. Written tables are kept so tests can inspect them.
type MemorySource struct {
	Sheets  []string
	Tables  map[string]*model.Table
	Written map[string]*model.ResultTable
	ReadErr map[string]error
}

func NewMemorySource() *MemorySource {
	return &MemorySource{
		Tables:  make(map[string]*model.Table),
		Written: make(map[string]*model.ResultTable),
		ReadErr: make(map[string]error),
	}
}

func (m *MemorySource) Name() string { return "memory" }

func (m *MemorySource) ListSheets() ([]string, error) {
	return m.Sheets, nil
}

func (m *MemorySource) ReadTable(sheet string) (*model.Table, error) {
	if err, ok := m.ReadErr[sheet]; ok {
		return nil, err
	}
	t, ok := m.Tables[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s not found", sheet)
	}
	return t, nil
}

func (m *MemorySource) WriteTable(sheet string, table *model.ResultTable) error {
	m.Written[sheet] = table
	return nil
}
