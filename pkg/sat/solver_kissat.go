package sat

import (
	"context"
	"fmt"
)

type kissatSolver struct {
	path string
}

func NewKissatSolver(path string) SATSolver {
	return &kissatSolver{path: path}
}

func (solver *kissatSolver) Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	args := []string{"-q", "--relaxed"}
	if limit := seconds(options); limit > 0 {
		args = append(args, fmt.Sprintf("--time=%d", limit))
	}

	output, satisfiable, err := runSolver(ctx, "kissat", solver.path, args, dimacs)
	if err != nil || !satisfiable {
		return nil, err
	}
	return parseSolution(output)
}
