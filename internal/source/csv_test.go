package source

import (
	"reflect"
	"testing"

	"BourseSignal/internal/model"
)

func TestCSVSource_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := NewCSVSource(dir)

	table := &model.ResultTable{
		Sheet:   "SNTS",
		Headers: []string{"Date", "Cours (F CFA)", "MM5"},
		Rows: [][]string{
			{"01/01/2024", "1 000", ""},
			{"02/01/2024", "1 010", "1005.00"},
		},
	}
	if err := src.WriteTable("SNTS", table); err != nil {
		t.Fatalf("write: %v", err)
	}

	sheets, err := src.ListSheets()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(sheets, []string{"SNTS"}) {
		t.Errorf("sheets = %v, want [SNTS]", sheets)
	}

	got, err := src.ReadTable("SNTS")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got.Headers, table.Headers) {
		t.Errorf("headers = %v, want %v", got.Headers, table.Headers)
	}
	if !reflect.DeepEqual(got.Rows, table.Rows) {
		t.Errorf("rows = %v, want %v", got.Rows, table.Rows)
	}
}

func TestCSVSource_ListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	src := NewCSVSource(dir)
	if err := src.WriteTable("BICC", &model.ResultTable{Headers: []string{"Date"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	sheets, err := src.ListSheets()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sheets) != 1 || sheets[0] != "BICC" {
		t.Errorf("sheets = %v, want [BICC]", sheets)
	}
}
