// Package parser normalizes the heterogeneous date, time, and day-pattern
// text found in course schedule spreadsheets, and decodes workbooks into
// raw records.
package parser

import (
	"strconv"
	"strings"
	"time"
)

// serialEpoch is day zero of the spreadsheet serial-date convention.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order against date text.
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"2006-01-02",
}

// dateFallbacks catch export formats outside the usual set.
var dateFallbacks = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// ParseDate parses a date cell: either a numeric day count since the
// spreadsheet epoch (1899-12-30) or one of the common text formats.
// The second return is false when nothing matched; callers skip the record.
func ParseDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	// Numeric cells come through as serial day counts. A fractional part
	// would be a time of day and is irrelevant here.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialEpoch.AddDate(0, 0, int(serial)), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	for _, layout := range dateFallbacks {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	return time.Time{}, false
}

// midnight truncates an instant to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
