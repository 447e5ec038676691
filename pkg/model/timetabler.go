package model

import (
	"context"
	"time"

	"github.com/limaJavier/cycle-timetabling/pkg/sat"
)

type Timetable struct {
	Schedule    Schedule   // Compacted schedule
	Status      sat.Status // Feasible or Optimal
	Wishes      uint64     // Wishes honoured by the solver's assignment, before compaction
	Variables   uint64
	Constraints int
	Elapsed     time.Duration // Time spent in the solver
}

type Timetabler interface {
	Build(
		ctx context.Context,
		spec TimetableSpec,
	) (timetable Timetable, err error)

	Verify(
		schedule Schedule,
		spec TimetableSpec,
	) bool
}
