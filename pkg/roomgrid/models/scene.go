package models

import "time"

// Scene is the drawable layout the composer produces: absolute pixel
// geometry for one render of one room's timetable. Renderers consume it
// without recomputing any schedule logic.
type Scene struct {
	// Width and Height are the full canvas dimensions in pixels.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Gutter is the width of the time-axis strip on the left; HeaderHeight
	// is the height of the date-label strip on top.
	Gutter       float64 `json:"gutter"`
	HeaderHeight float64 `json:"header_height"`
	// MinHour and MaxHour bound the visible time window, in whole hours.
	MinHour int `json:"min_hour"`
	MaxHour int `json:"max_hour"`
	// Room is the room filter the scene was built for, blank for all rooms.
	Room string `json:"room,omitempty"`
	// Columns are the date columns in ascending date order.
	Columns []Column `json:"columns"`
	// Gridlines are the horizontal hour lines spanning all columns.
	Gridlines []Gridline `json:"gridlines"`
}

// Column is one calendar date's vertical strip of the scene.
type Column struct {
	Date time.Time `json:"date"`
	// Label is the header text, e.g. "Tue 8/26".
	Label string `json:"label"`
	// X is the column's left edge; Width spans the full column before
	// lane division.
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	// Blocks are the positioned session blocks within this column.
	Blocks []Block `json:"blocks"`
}

// Block is one positioned, colored session rectangle.
type Block struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Fill is the block's hex fill color, Border its outline color.
	Fill   string `json:"fill"`
	Border string `json:"border"`
	// Lines is the label text: course/section, instructor, time range.
	Lines []string `json:"lines"`
}

// Gridline is one horizontal hour line with its axis label.
type Gridline struct {
	Hour int `json:"hour"`
	Y    float64 `json:"y"`
	// Label is the axis text, e.g. "8 AM".
	Label string `json:"label"`
}
