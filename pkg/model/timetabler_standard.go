package model

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/limaJavier/cycle-timetabling/pkg/sat"
)

type standardTimetabler struct {
	solver  sat.Solver
	options sat.Options
	logger  *zap.Logger
}

// NewTimetabler runs the whole pipeline: validate, build, solve, extract and compact. A nil logger discards logs
func NewTimetabler(solver sat.Solver, options sat.Options, logger *zap.Logger) Timetabler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &standardTimetabler{
		solver:  solver,
		options: options,
		logger:  logger,
	}
}

func (timetabler *standardTimetabler) Build(ctx context.Context, spec TimetableSpec) (Timetable, error) {
	//** Build model
	model, err := BuildModel(spec)
	if err != nil {
		timetabler.logger.Warn("invalid timetable spec", zap.Error(err))
		return Timetable{}, err
	}

	variables, constraints := model.Model.Variables, len(model.Model.Constraints)
	timetabler.logger.Info("timetable model built",
		zap.Uint64("variables", variables),
		zap.Int("constraints", constraints),
		zap.Int("wishes", model.Wishes),
		zap.Uint64("groups", spec.CountGroups()),
		zap.Uint64("subjects", spec.CountSubjects()),
		zap.Uint64("lessons_per_day", spec.LessonsPerDay),
	)

	//** Solve model
	start := time.Now()
	result, err := timetabler.solver.Solve(ctx, model.Model, timetabler.options)
	elapsed := time.Since(start)
	if err != nil {
		timetabler.logger.Error("solver failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return Timetable{}, fmt.Errorf("cannot solve timetable model: %w", err)
	}
	timetabler.logger.Info("solver finished",
		zap.Stringer("status", result.Status),
		zap.Uint64("objective", result.Objective),
		zap.Duration("elapsed", elapsed),
	)

	if result.Status.Solved() && !model.Model.Satisfied(result.Assignment) {
		return Timetable{}, invariantError("timetabler", "solver assignment violates the model")
	}

	//** Extract and compact schedule
	raw, err := Extract(model, result)
	if err != nil {
		timetabler.logger.Warn("no timetable available", zap.Error(err))
		return Timetable{}, err
	}

	schedule, err := Compact(raw)
	if err != nil {
		return Timetable{}, err
	}

	return Timetable{
		Schedule:    schedule,
		Status:      result.Status,
		Wishes:      honouredWishes(raw, spec),
		Variables:   variables,
		Constraints: constraints,
		Elapsed:     elapsed,
	}, nil
}

func (timetabler *standardTimetabler) Verify(schedule Schedule, spec TimetableSpec) bool {
	return verify(schedule, spec)
}
