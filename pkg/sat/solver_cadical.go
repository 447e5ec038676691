package sat

import (
	"context"
	"fmt"
)

type cadicalSolver struct {
	path string
}

func NewCadicalSolver(path string) SATSolver {
	return &cadicalSolver{path: path}
}

func (solver *cadicalSolver) Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) {
	dimacs := sat.ToDIMACS()

	args := []string{"-q"}
	if limit := seconds(options); limit > 0 {
		args = append(args, "-t", fmt.Sprint(limit))
	}

	output, satisfiable, err := runSolver(ctx, "cadical", solver.path, args, dimacs)
	if err != nil || !satisfiable {
		return nil, err
	}
	return parseSolution(output)
}
