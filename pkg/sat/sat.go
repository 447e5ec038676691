package sat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrIndeterminate is returned by a SATSolver that stopped before deciding the instance (time limit, cancellation or an engine giving up)
var ErrIndeterminate = errors.New("solver stopped before deciding the instance")

// SATSolution holds the signed literals of a model, e.g. [1 -2 3]
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

type SATSolver interface {
	Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Assignment projects the solution onto the first variables of the instance; variables missing from the solution are false
func (solution SATSolution) Assignment(variables uint64) Assignment {
	assignment := make(Assignment, variables)
	for _, literal := range solution {
		if literal > 0 && uint64(literal) <= variables {
			assignment[literal-1] = true
		}
	}
	return assignment
}
