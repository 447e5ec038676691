package model

import (
	"errors"
	"fmt"

	"github.com/limaJavier/cycle-timetabling/pkg/sat"
)

// ErrNoSchedule is matched by every error meaning the solver produced no assignment
var ErrNoSchedule = errors.New("no schedule available")

// ConfigurationError reports a malformed spec, detected before any model is built
type ConfigurationError struct {
	Field  string
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid timetable spec: %v: %v", err.Field, err.Reason)
}

func configurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InfeasibleModelError means the solver proved that no timetable satisfies the hard constraints
type InfeasibleModelError struct {
	Variables   uint64
	Constraints int
}

func (err *InfeasibleModelError) Error() string {
	return fmt.Sprintf("timetable is infeasible (%d variables, %d constraints)", err.Variables, err.Constraints)
}

func (err *InfeasibleModelError) Is(target error) bool {
	return target == ErrNoSchedule
}

// UnknownResultError means the solver stopped (time limit, cancellation) before deciding the model
type UnknownResultError struct {
	Status sat.Status
}

func (err *UnknownResultError) Error() string {
	return fmt.Sprintf("solver returned no assignment (status %v)", err.Status)
}

func (err *UnknownResultError) Is(target error) bool {
	return target == ErrNoSchedule
}

// InternalInvariantError signals a defect inside the pipeline rather than a problem with the input
type InternalInvariantError struct {
	Component string
	Detail    string
}

func (err *InternalInvariantError) Error() string {
	return fmt.Sprintf("%v: invariant violated: %v", err.Component, err.Detail)
}

func invariantError(component, format string, args ...any) *InternalInvariantError {
	return &InternalInvariantError{Component: component, Detail: fmt.Sprintf(format, args...)}
}
