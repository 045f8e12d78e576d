package series

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParsePrice converts a raw spreadsheet cell to a float64. The source
// mixes thousand separators, currency suffixes and comma decimals, so
// everything except digits, signs and separators is stripped and the
// comma is treated as the decimal point. Unparseable or empty cells
// yield NaN; this function never fails.
func ParsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// dateLayouts are tried in order. The source convention is day/month/year.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02/01/06",
}

// ParseDate parses a day/month/year cell. ok is false when no layout matches.
func ParseDate(raw string) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
