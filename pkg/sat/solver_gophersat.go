package sat

import (
	"context"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process optimizing solver. Constraints reach it as EncodeCNF clauses and the objective is optimized
// by minimizing the number of objective variables left false. A search cut short by the time limit or the context reports the best
// model found so far as Feasible
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(ctx context.Context, model *Model, options Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Status: Unknown}, nil
	}

	//** Translate constraints
	instance := EncodeCNF(model)
	constraints := make([]solver.PBConstr, 0, len(instance.Clauses)+1)
	if instance.Variables > 0 {
		// Declares every variable, even those no clause mentions
		constraints = append(constraints, solver.AtMost([]int{int(instance.Variables)}, 1))
	}
	for _, clause := range instance.Clauses {
		constraints = append(constraints, solver.PropClause(lo.Map(clause, func(literal int64, _ int) int { return int(literal) })...))
	}

	problem := solver.ParsePBConstrs(constraints)

	//** Objective: every unmet objective variable costs one
	if len(model.Objective) > 0 {
		literals := lo.Map(model.Objective, func(variable uint64, _ int) solver.Lit { return solver.IntToLit(-int32(variable)) })
		weights := lo.Map(model.Objective, func(_ uint64, _ int) int { return 1 })
		problem.SetCostFunc(literals, weights)
	}

	//** Solve
	engine := solver.New(problem)
	results := make(chan solver.Result)
	go engine.Optimal(results, nil)

	var timeout <-chan time.Time
	if budget := options.TimeLimit; budget > 0 {
		timer := time.NewTimer(budget)
		defer timer.Stop()
		timeout = timer.C
	}

	// Every model on results improves the previous one; the channel is closed once the search ends
	var best *solver.Result
	for {
		select {
		case result, ok := <-results:
			if !ok {
				return s.result(model, best, Optimal), nil
			}
			best = &result
			continue
		case <-ctx.Done():
		case <-timeout:
		}

		// TODO: gophersat's Optimal ignores its stop channel; an abandoned search runs until it finishes
		go func() {
			for range results {
			}
		}()
		return s.result(model, best, Feasible), nil
	}
}

// result turns the last model gophersat sent into a Result; status is what a satisfying model stands for
func (s *gophersatSolver) result(model *Model, best *solver.Result, status Status) Result {
	if best == nil {
		if status == Optimal {
			// The search ended without sending anything
			return Result{Status: Infeasible}
		}
		return Result{Status: Unknown}
	}

	switch best.Status {
	case solver.Sat:
	case solver.Unsat:
		return Result{Status: Infeasible}
	default:
		return Result{Status: Unknown}
	}

	assignment := make(Assignment, model.Variables)
	copy(assignment, best.Model)
	return Result{
		Status:     status,
		Assignment: assignment,
		Objective:  model.ObjectiveValue(assignment),
	}
}
