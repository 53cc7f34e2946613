package schedule

import (
	"testing"
	"time"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

func TestOccurrencesEveryTuesday(t *testing.T) {
	rec := models.RawRecord{
		StartDate: "8/25/2025",
		EndDate:   "12/16/2025",
		DaysMet:   "T",
	}

	dates := Occurrences(rec)
	if len(dates) != 17 {
		t.Fatalf("Expected 17 Tuesdays, got %d", len(dates))
	}

	first := time.Date(2025, time.August, 26, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, time.December, 16, 0, 0, 0, 0, time.UTC)
	if !dates[0].Equal(first) {
		t.Errorf("First occurrence %v, expected %v", dates[0], first)
	}
	if !dates[len(dates)-1].Equal(last) {
		t.Errorf("Last occurrence %v, expected %v", dates[len(dates)-1], last)
	}

	for i, d := range dates {
		if d.Weekday() != time.Tuesday {
			t.Errorf("Occurrence %d is a %v, expected Tuesday", i, d.Weekday())
		}
		if i > 0 && !d.Equal(dates[i-1].AddDate(0, 0, 7)) {
			t.Errorf("Occurrence %d is not one week after the previous: %v", i, d)
		}
	}
}

func TestOccurrencesMultipleDays(t *testing.T) {
	// 9/1/2025 is a Monday.
	rec := models.RawRecord{
		StartDate: "9/1/2025",
		EndDate:   "9/7/2025",
		DaysMet:   "MWF",
	}

	dates := Occurrences(rec)
	if len(dates) != 3 {
		t.Fatalf("Expected 3 occurrences, got %d", len(dates))
	}
	wantDays := []int{1, 3, 5}
	for i, d := range dates {
		if d.Day() != wantDays[i] {
			t.Errorf("Occurrence %d on day %d, expected %d", i, d.Day(), wantDays[i])
		}
	}
}

func TestOccurrencesFailsSoft(t *testing.T) {
	tests := []struct {
		name string
		rec  models.RawRecord
	}{
		{"bad start date", models.RawRecord{StartDate: "bogus", EndDate: "12/16/2025", DaysMet: "T"}},
		{"bad end date", models.RawRecord{StartDate: "8/25/2025", EndDate: "bogus", DaysMet: "T"}},
		{"no weekday pattern", models.RawRecord{StartDate: "8/25/2025", EndDate: "12/16/2025", DaysMet: ""}},
		{"unrecognized pattern", models.RawRecord{StartDate: "8/25/2025", EndDate: "12/16/2025", DaysMet: "xyz"}},
	}
	for _, tt := range tests {
		if dates := Occurrences(tt.rec); len(dates) != 0 {
			t.Errorf("%s: expected no occurrences, got %d", tt.name, len(dates))
		}
	}
}

func TestOccurrencesInvertedRange(t *testing.T) {
	rec := models.RawRecord{StartDate: "12/16/2025", EndDate: "8/25/2025", DaysMet: "T"}
	if dates := Occurrences(rec); len(dates) != 0 {
		t.Errorf("Inverted range produced %d occurrences", len(dates))
	}
}
