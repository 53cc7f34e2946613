// Package schedule expands raw scheduling records into concrete session
// instances and packs overlapping sessions into visual lanes.
package schedule

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/parser"
)

// Occurrences expands a record's date range and weekday pattern into the
// concrete dates the class meets, in ascending order. It fails soft: an
// unparseable range or an empty weekday pattern yields no occurrences and
// no error.
func Occurrences(rec models.RawRecord) []time.Time {
	start, ok := parser.ParseDate(rec.StartDate)
	if !ok {
		log.Debug().Int("row", rec.Row).Str("value", rec.StartDate).Msg("unparseable start date, skipping record")
		return nil
	}
	end, ok := parser.ParseDate(rec.EndDate)
	if !ok {
		log.Debug().Int("row", rec.Row).Str("value", rec.EndDate).Msg("unparseable end date, skipping record")
		return nil
	}
	days := parser.NormalizeDays(rec.DaysMet)
	if len(days) == 0 {
		log.Debug().Int("row", rec.Row).Str("value", rec.DaysMet).Msg("no weekday pattern, skipping record")
		return nil
	}

	var wanted [7]bool
	for _, d := range days {
		wanted[d] = true
	}

	// Terms are bounded to about a year, so a day-by-day scan is fine.
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wanted[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}
