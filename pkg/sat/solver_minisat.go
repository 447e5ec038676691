package sat

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type minisatSolver struct {
	path string
}

// NewMinisatSolver runs minisat, which reads and writes files instead of standard streams
func NewMinisatSolver(path string) SATSolver {
	return &minisatSolver{path: path}
}

func (solver *minisatSolver) Solve(ctx context.Context, sat SAT, options Options) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(inputTempFile.Name())

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	outputTempFile.Close()
	defer os.Remove(outputTempFile.Name())

	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %w", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	args := []string{"-verb=0"}
	if limit := seconds(options); limit > 0 {
		args = append(args, fmt.Sprintf("-cpu-lim=%d", limit))
	}
	args = append(args, inputTempFile.Name(), outputTempFile.Name())

	_, satisfiable, err := runSolver(ctx, "minisat", solver.path, args, "")
	if err != nil || !satisfiable {
		return nil, err
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}
	return solver.parseSolution(string(output))
}

// The output file holds a "SAT" header followed by one line of literals
func (solver *minisatSolver) parseSolution(solverOutput string) (SATSolution, error) {
	lines := strings.SplitN(solverOutput, "\n", 3)
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "SAT" {
		return nil, fmt.Errorf("unexpected minisat output: %q", solverOutput)
	}

	fields := strings.Fields(lines[1])
	solution := make(SATSolution, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		} else if value != 0 {
			solution = append(solution, value)
		}
	}
	return solution, nil
}
