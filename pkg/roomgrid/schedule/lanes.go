package schedule

import (
	"time"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

// PackLanes assigns every session a horizontal lane within its date column
// using greedy interval partitioning, and tags each with its date's final
// lane count. Sessions must already be sorted by date then start instant,
// which BuildSessions guarantees; processed in that order the greedy choice
// uses the minimum possible number of lanes per date.
func PackLanes(sessions []models.Session) {
	for i := 0; i < len(sessions); {
		j := i
		for j < len(sessions) && sessions[j].Date.Equal(sessions[i].Date) {
			j++
		}
		packDay(sessions[i:j])
		i = j
	}
}

// packDay packs one date's sessions. laneEnds[k] is the end instant of the
// session most recently placed in lane k; a lane is free for a session once
// it ends at or before that session's start.
func packDay(day []models.Session) {
	var laneEnds []time.Time
	for i := range day {
		lane := -1
		for k, end := range laneEnds {
			if !end.After(day[i].Start) {
				lane = k
				break
			}
		}
		if lane < 0 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, day[i].End)
		} else {
			laneEnds[lane] = day[i].End
		}
		day[i].Lane = lane
	}
	for i := range day {
		day[i].LaneCount = len(laneEnds)
	}
}
