package parser

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

// Canonical column keys.
const (
	colCourseSection    = "courseSection"
	colCourseOfferingID = "courseOfferingId"
	colStartDate        = "startDate"
	colEndDate          = "endDate"
	colDaysMet          = "daysMet"
	colStartTime        = "startTime"
	colEndTime          = "endTime"
	colInstructor       = "instructor"
	colRoom             = "room"
	colMaxEnrollment    = "maxEnrollment"
	colStatus           = "status"
	colTerm             = "term"
)

// headerSynonyms maps normalized header text to canonical column keys.
// Registrar exports disagree on spelling ("Course/Section" vs
// "Course Section"); headers are matched case-insensitively after
// normalizeHeader.
var headerSynonyms = map[string]string{
	"course/section":     colCourseSection,
	"course section":     colCourseSection,
	"section":            colCourseSection,
	"course offering id": colCourseOfferingID,
	"offering id":        colCourseOfferingID,
	"course id":          colCourseOfferingID,
	"start date":         colStartDate,
	"begin date":         colStartDate,
	"end date":           colEndDate,
	"days met":           colDaysMet,
	"days":               colDaysMet,
	"meeting days":       colDaysMet,
	"start time":         colStartTime,
	"end time":           colEndTime,
	"instructor":         colInstructor,
	"instructors":        colInstructor,
	"room":               colRoom,
	"facility":           colRoom,
	"location":           colRoom,
	"max enrollment":     colMaxEnrollment,
	"max enroll":         colMaxEnrollment,
	"status":             colStatus,
	"term":               colTerm,
}

// ReadWorkbook opens an .xlsx file and extracts raw records from its first
// sheet. Multi-sheet workbooks are not supported; only the first sheet is
// read.
func ReadWorkbook(path string) ([]models.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return ExtractRecords(f, sheets[0])
}

// ExtractRecords maps a sheet's rows into raw records through the header
// synonym table. The first row is the header; rows missing room, start/end
// date, or start/end time are dropped before they reach the schedule
// pipeline.
func ExtractRecords(f *excelize.File, sheetName string) ([]models.RawRecord, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	fields := make(map[int]string) // column index -> canonical key
	for colIdx, header := range rows[0] {
		if key, ok := headerSynonyms[normalizeHeader(header)]; ok {
			fields[colIdx] = key
		}
	}

	var records []models.RawRecord
	for rowIdx, row := range rows[1:] {
		rec := models.RawRecord{Row: rowIdx + 2} // 1-based, after header
		hasData := false
		for colIdx, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			hasData = true
			if key, ok := fields[colIdx]; ok {
				setField(&rec, key, cell)
			}
		}
		if !hasData {
			continue
		}
		if missing := missingRequired(rec); missing != "" {
			log.Debug().Int("row", rec.Row).Str("missing", missing).Msg("dropping row without required field")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// normalizeHeader lowercases and collapses separators so "Course_Section",
// "Course-Section" and "Course Section" all compare equal.
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.NewReplacer("_", " ", "-", " ", ".", "").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

func setField(rec *models.RawRecord, key, value string) {
	switch key {
	case colCourseSection:
		rec.CourseSection = value
	case colCourseOfferingID:
		rec.CourseOfferingID = value
	case colStartDate:
		rec.StartDate = value
	case colEndDate:
		rec.EndDate = value
	case colDaysMet:
		rec.DaysMet = value
	case colStartTime:
		rec.StartTime = value
	case colEndTime:
		rec.EndTime = value
	case colInstructor:
		rec.Instructor = value
	case colRoom:
		rec.Room = value
	case colMaxEnrollment:
		rec.MaxEnrollment = value
	case colStatus:
		rec.Status = value
	case colTerm:
		rec.Term = value
	}
}

// missingRequired names the first absent required field, or "" when the
// record is usable.
func missingRequired(rec models.RawRecord) string {
	switch {
	case rec.Room == "":
		return "room"
	case rec.StartDate == "":
		return "start date"
	case rec.EndDate == "":
		return "end date"
	case rec.StartTime == "":
		return "start time"
	case rec.EndTime == "":
		return "end time"
	}
	return ""
}
