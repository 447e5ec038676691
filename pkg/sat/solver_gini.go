package sat

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process SAT engine, no external binary needed
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrIndeterminate
	}

	g := gini.New()
	var maxVariable int64
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(giniLiteral(literal))
			maxVariable = max(maxVariable, literal, -literal)
		}
		g.Add(0)
	}

	// 1 stands for satisfiable, -1 for unsatisfiable and 0 for unknown
	var result int
	if budget := solveBudget(ctx, options); budget > 0 {
		result = g.GoSolve().Try(budget)
	} else {
		result = g.Solve()
	}

	switch result {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, ErrIndeterminate
	}

	solution := make(SATSolution, 0, maxVariable)
	for variable := int64(1); variable <= maxVariable; variable++ {
		if g.Value(giniLiteral(variable)) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}

func giniLiteral(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(-literal).Neg()
	}
	return z.Var(literal).Pos()
}

// solveBudget is the smallest of the configured time limit and the context deadline; zero means unbounded
func solveBudget(ctx context.Context, options Options) time.Duration {
	budget := options.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			remaining = time.Nanosecond
		}
		if budget <= 0 || remaining < budget {
			budget = remaining
		}
	}
	return budget
}
