package sat

import (
	"context"
	"time"

	"github.com/samber/lo"
)

type Status int

const (
	Unknown Status = iota
	Infeasible
	Feasible
	Optimal
)

func (status Status) String() string {
	switch status {
	case Infeasible:
		return "INFEASIBLE"
	case Feasible:
		return "FEASIBLE"
	case Optimal:
		return "OPTIMAL"
	default:
		return "UNKNOWN"
	}
}

// Solved reports whether the status carries an assignment
func (status Status) Solved() bool {
	return status == Feasible || status == Optimal
}

type Relation int

const (
	LessOrEqual Relation = iota
	Equal
)

func (relation Relation) String() string {
	if relation == Equal {
		return "="
	}
	return "<="
}

// Constraint states that the number of true variables relates to Bound, i.e. sum(Variables) <= Bound or sum(Variables) = Bound
type Constraint struct {
	Variables []uint64
	Relation  Relation
	Bound     uint64
}

// Satisfied evaluates the constraint against an assignment
func (constraint Constraint) Satisfied(assignment Assignment) bool {
	count := uint64(lo.CountBy(constraint.Variables, assignment.Value))
	if constraint.Relation == Equal {
		return count == constraint.Bound
	}
	return count <= constraint.Bound
}

// Model is a pure boolean model: variables are numbered 1..Variables, constraints are unit-coefficient linear (in)equalities and
// the optional objective maximizes the number of true variables among Objective
type Model struct {
	Variables   uint64
	Constraints []Constraint
	Objective   []uint64
}

func NewModel(variables uint64) *Model {
	return &Model{Variables: variables}
}

func (model *Model) AddLessOrEqual(variables []uint64, bound uint64) {
	model.Constraints = append(model.Constraints, Constraint{Variables: variables, Relation: LessOrEqual, Bound: bound})
}

func (model *Model) AddEquality(variables []uint64, bound uint64) {
	model.Constraints = append(model.Constraints, Constraint{Variables: variables, Relation: Equal, Bound: bound})
}

// AddContradiction makes the model infeasible: an empty sum never equals one
func (model *Model) AddContradiction() {
	model.AddEquality(nil, 1)
}

func (model *Model) Maximize(variables []uint64) {
	model.Objective = variables
}

// ObjectiveValue counts the objective variables set in the assignment
func (model *Model) ObjectiveValue(assignment Assignment) uint64 {
	return uint64(lo.CountBy(model.Objective, assignment.Value))
}

// Satisfied checks every constraint of the model against the assignment
func (model *Model) Satisfied(assignment Assignment) bool {
	return uint64(len(assignment)) >= model.Variables && lo.EveryBy(model.Constraints, func(constraint Constraint) bool {
		return constraint.Satisfied(assignment)
	})
}

// Assignment holds the value of variable v at position v-1
type Assignment []bool

func (assignment Assignment) Value(variable uint64) bool {
	return variable > 0 && variable <= uint64(len(assignment)) && assignment[variable-1]
}

type Result struct {
	Status     Status
	Assignment Assignment // Only present when Status.Solved()
	Objective  uint64
}

// Options are handed as-is to the solver backend; zero values mean "no limit" and "backend default"
type Options struct {
	TimeLimit time.Duration
	Workers   int
}

// Solver is the narrow contract the timetabling core depends on. A timeout or cancellation must yield Unknown, not an error
type Solver interface {
	Solve(ctx context.Context, model *Model, options Options) (Result, error)
}
