package sat

import (
	"context"
	"errors"
)

type cnfSolver struct {
	engine SATSolver
}

// NewCNFSolver lets a plain SAT engine serve boolean models. Constraints are encoded with EncodeCNF; the objective is evaluated but not
// optimized, so a satisfiable model with an objective is reported as Feasible
func NewCNFSolver(engine SATSolver) Solver {
	return &cnfSolver{engine: engine}
}

func (solver *cnfSolver) Solve(ctx context.Context, model *Model, options Options) (Result, error) {
	instance := EncodeCNF(model)

	solution, err := solver.engine.Solve(ctx, instance, options)
	if errors.Is(err, ErrIndeterminate) {
		return Result{Status: Unknown}, nil
	} else if err != nil {
		return Result{}, err
	} else if solution == nil {
		return Result{Status: Infeasible}, nil
	}

	assignment := solution.Assignment(model.Variables)
	status := Optimal
	if len(model.Objective) > 0 {
		status = Feasible
	}

	return Result{
		Status:     status,
		Assignment: assignment,
		Objective:  model.ObjectiveValue(assignment),
	}, nil
}
