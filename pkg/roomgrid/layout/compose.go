package layout

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

// Margins outside the column grid, in pixels.
const (
	rightMargin  = 16
	bottomMargin = 16
)

// Compose builds the drawable scene from packed, colored sessions. userMin
// and userMax are the caller's hour bounds; they can widen but never narrow
// the window computed from the data, so a 9-to-5 setting still shows the
// 8 AM class. Callers with no preference pass userMin=24 and userMax=0.
func Compose(sessions []models.Session, room string, cfg Config, userMin, userMax int) models.Scene {
	autoMin, autoMax := autoBounds(sessions)
	lo := min(userMin, autoMin)
	hi := max(userMax, autoMax)
	lo = max(lo, 0)
	hi = min(hi, 24)
	if hi <= lo {
		lo, hi = autoMin, autoMax
	}

	scene := models.Scene{
		MinHour:      lo,
		MaxHour:      hi,
		Room:         room,
		Gutter:       cfg.GutterWidth,
		HeaderHeight: cfg.HeaderHeight,
	}

	for i := lo; i <= hi; i++ {
		scene.Gridlines = append(scene.Gridlines, models.Gridline{
			Hour:  i,
			Y:     cfg.HeaderHeight + float64(i-lo)*cfg.HourHeight,
			Label: hourLabel(i),
		})
	}

	// Sessions arrive sorted by date, so one pass groups the columns.
	for i := 0; i < len(sessions); {
		j := i
		for j < len(sessions) && sessions[j].Date.Equal(sessions[i].Date) {
			j++
		}
		scene.Columns = append(scene.Columns, composeColumn(sessions[i:j], cfg, len(scene.Columns), lo))
		i = j
	}

	scene.Width = cfg.GutterWidth + float64(len(scene.Columns))*cfg.ColumnWidth + rightMargin
	scene.Height = cfg.HeaderHeight + float64(hi-lo)*cfg.HourHeight + bottomMargin
	return scene
}

// composeColumn lays out one date's sessions. The column width is divided
// evenly by the date's lane count, and each block sits at its lane index.
func composeColumn(day []models.Session, cfg Config, index, minHour int) models.Column {
	col := models.Column{
		Date:  day[0].Date,
		Label: day[0].Date.Format("Mon 1/2"),
		X:     cfg.GutterWidth + float64(index)*cfg.ColumnWidth,
		Width: cfg.ColumnWidth,
	}
	for _, s := range day {
		laneWidth := cfg.ColumnWidth / float64(s.LaneCount)
		startMin := float64(s.Start.Hour()*60 + s.Start.Minute())
		durMin := s.End.Sub(s.Start).Minutes()
		col.Blocks = append(col.Blocks, models.Block{
			X:      col.X + float64(s.Lane)*laneWidth + cfg.BlockPadding,
			Y:      cfg.HeaderHeight + (startMin-float64(minHour*60))/60*cfg.HourHeight,
			Width:  laneWidth - 2*cfg.BlockPadding,
			Height: durMin / 60 * cfg.HourHeight,
			Fill:   s.Color,
			Border: borderFor(s.Color),
			Lines: []string{
				s.CourseSection,
				s.Instructor,
				fmt.Sprintf("%s - %s", clockLabel(s.Start.Hour(), s.Start.Minute()), clockLabel(s.End.Hour(), s.End.Minute())),
			},
		})
	}
	return col
}

// autoBounds derives the visible hour window from the data: half an hour of
// slack on each side, snapped outward to whole hours, clamped to the day.
// With no sessions it falls back to a business-hours window.
func autoBounds(sessions []models.Session) (int, int) {
	if len(sessions) == 0 {
		return 8, 18
	}
	earliest := 24 * 60
	latest := 0
	for _, s := range sessions {
		start := s.Start.Hour()*60 + s.Start.Minute()
		end := s.End.Hour()*60 + s.End.Minute()
		if start < earliest {
			earliest = start
		}
		if end > latest {
			latest = end
		}
	}
	lo := (earliest - 30) / 60
	hi := (latest + 30 + 59) / 60
	return max(lo, 0), min(hi, 24)
}

// hourLabel formats a whole hour for the time axis, e.g. "8 AM", "12 PM".
func hourLabel(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// clockLabel formats a time of day for block labels, e.g. "12:00 PM".
func clockLabel(hour, minute int) string {
	suffix := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		h = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// borderFor darkens a block's fill color for its outline.
func borderFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#333333"
	}
	return c.BlendRgb(colorful.Color{}, 0.35).Hex()
}
