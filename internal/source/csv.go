package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"BourseSignal/internal/model"
)

// CSVSource implements Source over a local directory of CSV files, one
// file per security sheet. The annotated table is written back over the
// same file. This is the default source for development and one-off
// runs on exported data.
type CSVSource struct {
	Dir string
}

// NewCSVSource creates a source reading <dir>/<sheet>.csv files.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir}
}

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) ListSheets() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}
	var sheets []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		sheets = append(sheets, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(sheets)
	return sheets, nil
}

func (s *CSVSource) ReadTable(sheet string) (*model.Table, error) {
	f, err := os.Open(s.path(sheet))
	if err != nil {
		return nil, fmt.Errorf("open sheet %s: %w", sheet, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // source rows are ragged
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(records) == 0 {
		return &model.Table{}, nil
	}
	return &model.Table{Headers: records[0], Rows: records[1:]}, nil
}

func (s *CSVSource) WriteTable(sheet string, table *model.ResultTable) error {
	tmp := s.path(sheet) + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(table.Rows)+1)
	records = append(records, table.Headers)
	records = append(records, table.Rows...)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write sheet %s: %w", sheet, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close sheet %s: %w", sheet, err)
	}
	return os.Rename(tmp, s.path(sheet))
}

func (s *CSVSource) path(sheet string) string {
	return filepath.Join(s.Dir, sheet+".csv")
}
