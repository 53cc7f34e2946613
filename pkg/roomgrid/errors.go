package roomgrid

import (
	"errors"
	"fmt"
)

// ErrNoRecords indicates the workbook held no usable scheduling rows at
// all. Rows that merely fail to parse never produce this: they degrade to
// fewer rendered sessions.
var ErrNoRecords = errors.New("no usable records in workbook")

// PipelineError wraps a hard failure in one stage of the pipeline.
type PipelineError struct {
	Stage string // "ingest", "compose", "render"
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
