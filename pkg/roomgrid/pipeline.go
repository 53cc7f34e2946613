package roomgrid

import (
	"github.com/rs/zerolog/log"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/layout"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/parser"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/schedule"
)

// Generate ingests an .xlsx schedule workbook and composes the timetable
// scene for it. It returns ErrNoRecords when the workbook yields no usable
// rows at all; a workbook whose rows merely fail the room filter or the
// parsers still composes (an empty or sparse scene).
func Generate(path string, opts Options) (*models.Scene, error) {
	records, err := parser.ReadWorkbook(path)
	if err != nil {
		return nil, &PipelineError{Stage: "ingest", Err: err}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return GenerateFromRecords(records, opts)
}

// GenerateFromRecords runs the pure pipeline over already-decoded rows:
// session building, color assignment, lane packing, and layout composition.
// It is deterministic and side-effect free given identical inputs.
func GenerateFromRecords(records []models.RawRecord, opts Options) (*models.Scene, error) {
	cfg := layout.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, &PipelineError{Stage: "compose", Err: err}
	}

	sessions := schedule.BuildSessions(records, opts.Room)
	colors := schedule.AssignColors(schedule.InstructorOrder(sessions), cfg.Palette)
	schedule.Colorize(sessions, colors)
	schedule.PackLanes(sessions)

	lo, hi := opts.Bounds()
	scene := layout.Compose(sessions, opts.Room, cfg, lo, hi)

	log.Debug().
		Int("records", len(records)).
		Int("sessions", len(sessions)).
		Int("columns", len(scene.Columns)).
		Str("room", opts.Room).
		Msg("composed timetable scene")
	return &scene, nil
}
