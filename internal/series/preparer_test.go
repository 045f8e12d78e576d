package series

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"BourseSignal/internal/model"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1250", 1250},
		{"1 250", 1250},
		{"1,5", 1.5},
		{"2500 F CFA", 2500},
		{"-12,25", -12.25},
		{"  995  ", 995},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.raw); got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParsePrice_Unparseable(t *testing.T) {
	// "1.250,75" mixes separators: the cleaner keeps both marks and the
	// parse fails, which is the safe outcome for an ambiguous cell.
	for _, raw := range []string{"", "   ", "n/a", "--", "suspendu", "1.250,75"} {
		if got := ParsePrice(raw); !math.IsNaN(got) {
			t.Errorf("ParsePrice(%q) = %v, want NaN", raw, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("21/03/2024")
	if !ok {
		t.Fatal("expected 21/03/2024 to parse")
	}
	if d.Day() != 21 || int(d.Month()) != 3 || d.Year() != 2024 {
		t.Errorf("got %v, want 2024-03-21", d)
	}
	if _, ok := ParseDate("not a date"); ok {
		t.Error("expected parse failure")
	}
}

func priceTable(n int) *model.Table {
	t := &model.Table{Headers: []string{"Date", "Titre", "Cours (F CFA)"}}
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%02d/%02d/2024", i%28+1, i/28+1),
			"SNTS",
			fmt.Sprintf("%d", 1000+i),
		})
	}
	return t
}

func TestPrepare_MissingPriceColumn(t *testing.T) {
	p := NewPreparer("Cours (F CFA)", "Date")
	table := &model.Table{Headers: []string{"Date", "Titre"}, Rows: [][]string{{"01/01/2024", "SNTS"}}}
	_, err := p.Prepare("SNTS", table)
	if !errors.Is(err, ErrNoPriceColumn) {
		t.Fatalf("expected ErrNoPriceColumn, got %v", err)
	}
}

func TestPrepare_InsufficientHistory(t *testing.T) {
	p := NewPreparer("Cours (F CFA)", "Date")
	_, err := p.Prepare("SNTS", priceTable(49))
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory for 49 rows, got %v", err)
	}
	if _, err := p.Prepare("SNTS", priceTable(50)); err != nil {
		t.Fatalf("expected 50 rows to pass, got %v", err)
	}
}

func TestPrepare_DropsUnpricedRows(t *testing.T) {
	table := priceTable(52)
	table.Rows[10][2] = "suspendu"
	table.Rows[20][2] = ""

	p := NewPreparer("Cours (F CFA)", "Date")
	ps, err := p.Prepare("SNTS", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps.Records) != 50 {
		t.Errorf("expected 50 priced records, got %d", len(ps.Records))
	}
	if len(ps.Original) != 52 {
		t.Errorf("expected all 52 original records kept, got %d", len(ps.Original))
	}
	for _, rec := range ps.Records {
		if rec.Index == 10 || rec.Index == 20 {
			t.Errorf("unpriced row %d leaked into series", rec.Index)
		}
	}
}

func TestPrepare_SortsByDateUndatedLast(t *testing.T) {
	table := priceTable(52)
	// Shuffle two rows out of order and break one date.
	table.Rows[0][0] = "31/12/2024"
	table.Rows[5][0] = "???"

	p := NewPreparer("Cours (F CFA)", "Date")
	ps, err := p.Prepare("SNTS", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := ps.Records[len(ps.Records)-1]
	if last.HasDate {
		t.Errorf("expected undated row last, got row %d with date %v", last.Index, last.Date)
	}
	if last.Index != 5 {
		t.Errorf("expected original row 5 last, got %d", last.Index)
	}
	// Row 0 was re-dated to the latest date: it must sort after every
	// dated record.
	dated := ps.Records[:len(ps.Records)-1]
	if dated[len(dated)-1].Index != 0 {
		t.Errorf("expected re-dated row 0 at end of dated records, got %d", dated[len(dated)-1].Index)
	}
	for i := 1; i < len(dated); i++ {
		if dated[i-1].Date.After(dated[i].Date) {
			t.Fatalf("records not sorted ascending at %d", i)
		}
	}
}
