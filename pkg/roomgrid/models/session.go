package models

import "time"

// Session is one concrete meeting of a class on one calendar date, with
// resolved start and end instants. Sessions are immutable once built except
// for the lane fields, which the lane packer fills in.
type Session struct {
	// Date is the occurrence date at midnight.
	Date time.Time `json:"date"`
	// Start and End are the meeting instants on Date. Start precedes End
	// for every session the builder emits.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// CourseSection and Instructor label the block in the rendered scene.
	CourseSection string `json:"course_section"`
	Instructor    string `json:"instructor"`
	// Room is the room this session occupies.
	Room string `json:"room"`
	// Color is the hex color assigned from the instructor palette.
	Color string `json:"color,omitempty"`
	// Lane is the horizontal track index within the date column, and
	// LaneCount is that date's total track count (peak concurrency).
	Lane      int `json:"lane"`
	LaneCount int `json:"lane_count"`
}

// DateKey returns the occurrence date as a map key.
func (s Session) DateKey() string {
	return s.Date.Format("2006-01-02")
}

// Overlaps reports whether the two sessions' time intervals intersect.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (s Session) Overlaps(o Session) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}
