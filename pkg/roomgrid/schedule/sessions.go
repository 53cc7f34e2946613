package schedule

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/parser"
)

// UnknownInstructor labels sessions whose instructor cell is blank.
const UnknownInstructor = "Unknown"

// BuildSessions expands records into session instances sorted by date, then
// start instant. A non-empty room keeps only that room's records (matched
// case-insensitively, trimmed). Occurrences whose times cannot be resolved
// into a start strictly before the end are dropped.
func BuildSessions(records []models.RawRecord, room string) []models.Session {
	target := strings.TrimSpace(room)

	var sessions []models.Session
	for _, rec := range records {
		if target != "" && !strings.EqualFold(strings.TrimSpace(rec.Room), target) {
			continue
		}
		instructor := strings.TrimSpace(rec.Instructor)
		if instructor == "" {
			instructor = UnknownInstructor
		}
		for _, date := range Occurrences(rec) {
			start := parser.ParseClock(date, rec.StartTime)
			end := parser.ParseClock(date, rec.EndTime)
			if !start.Before(end) {
				log.Debug().Int("row", rec.Row).Str("date", date.Format("2006-01-02")).Msg("start not before end, dropping occurrence")
				continue
			}
			sessions = append(sessions, models.Session{
				Date:          date,
				Start:         start,
				End:           end,
				CourseSection: rec.CourseSection,
				Instructor:    instructor,
				Room:          rec.Room,
			})
		}
	}

	// The lane packer depends on this ordering.
	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.Start.Compare(b.Start)
	})
	return sessions
}
