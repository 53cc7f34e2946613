// Package models defines the value types flowing through the timetable pipeline.
package models

// RawRecord is one spreadsheet row after header normalization.
// Every field carries the source text untouched; nothing is guaranteed
// well-formed until the parser has had a look at it.
type RawRecord struct {
	// Row is the 1-based source row number, kept for log context.
	Row int `json:"row"`
	// CourseSection identifies the course and section, e.g. "MATH 101 01".
	CourseSection string `json:"course_section,omitempty"`
	// CourseOfferingID is the registrar's offering identifier.
	CourseOfferingID string `json:"course_offering_id,omitempty"`
	// StartDate is the first day of the date range (text or serial number).
	StartDate string `json:"start_date,omitempty"`
	// EndDate is the last day of the date range, inclusive.
	EndDate string `json:"end_date,omitempty"`
	// DaysMet is the free-text weekday pattern, e.g. "MWF" or "TuTh".
	DaysMet string `json:"days_met,omitempty"`
	// StartTime is the meeting start time of day, e.g. "12:00 PM".
	StartTime string `json:"start_time,omitempty"`
	// EndTime is the meeting end time of day.
	EndTime string `json:"end_time,omitempty"`
	// Instructor is the instructor name, possibly blank.
	Instructor string `json:"instructor,omitempty"`
	// Room is the room identifier, e.g. "THOM 107AC".
	Room string `json:"room,omitempty"`
	// MaxEnrollment is the enrollment cap as read from the sheet.
	MaxEnrollment string `json:"max_enrollment,omitempty"`
	// Status is the section status, e.g. "Open".
	Status string `json:"status,omitempty"`
	// Term is the academic term label.
	Term string `json:"term,omitempty"`
}
