package sat

import (
	"context"
	"fmt"
)

type cryptominisatSolver struct {
	path string
}

// NewCryptominisatSolver is the only external backend that honours Options.Workers
func NewCryptominisatSolver(path string) SATSolver {
	return &cryptominisatSolver{path: path}
}

func (solver *cryptominisatSolver) Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) {
	dimacs := sat.ToDIMACS()

	args := []string{"--verb=0"}
	if limit := seconds(options); limit > 0 {
		args = append(args, fmt.Sprintf("--maxtime=%d", limit))
	}
	if options.Workers > 1 {
		args = append(args, fmt.Sprintf("--threads=%d", options.Workers))
	}

	output, satisfiable, err := runSolver(ctx, "cryptominisat", solver.path, args, dimacs)
	if err != nil || !satisfiable {
		return nil, err
	}
	return parseSolution(output)
}
