// Package roomgrid turns course-section scheduling spreadsheets into
// room-occupancy timetable scenes.
package roomgrid

import "github.com/roomgrid/roomgrid-go/pkg/roomgrid/layout"

// Options configures one render run.
type Options struct {
	// Room filters sessions to a single room. Empty renders all rooms.
	Room string
	// MinHour and MaxHour extend the visible time window. If nil, the
	// window is computed from the data alone. Settings can widen the
	// window but never hide a session.
	MinHour *int
	MaxHour *int
	// Config overrides the render geometry and palette. Nil means
	// defaults.
	Config *layout.Config
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{}
}

// Bounds returns the user hour bounds for the layout composer. Unset bounds
// map to sentinels (24 for the minimum, 0 for the maximum) that can never
// narrow the auto-computed window.
func (o Options) Bounds() (int, int) {
	lo, hi := 24, 0
	if o.MinHour != nil {
		lo = *o.MinHour
	}
	if o.MaxHour != nil {
		hi = *o.MaxHour
	}
	return lo, hi
}
