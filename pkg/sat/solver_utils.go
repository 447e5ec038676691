package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Exit codes shared by SAT-competition solvers
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

// runSolver feeds stdin to the executable and classifies its exit code. The returned flag tells whether the instance is satisfiable;
// a killed or timed-out run yields ErrIndeterminate
func runSolver(ctx context.Context, name, path string, args []string, stdin string) (string, bool, error) {
	if path == "" {
		return "", false, fmt.Errorf("no executable configured for %v", name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", false, ErrIndeterminate
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", false, fmt.Errorf("cannot execute %v: %w", name, err)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	switch cmd.ProcessState.ExitCode() {
	case exitSatisfiable:
		return stdOut.String(), true, nil
	case exitUnsatisfiable:
		return stdOut.String(), false, nil
	case 0:
		// Solvers answer "s UNKNOWN" with a zero exit code once their own time limit is hit
		return "", false, ErrIndeterminate
	default:
		return "", false, fmt.Errorf("an error occurred during %v execution: %v : %v", name, err, stderr.String())
	}
}

// parseSolution collects the literals of every "v" line, dropping the terminating 0
func parseSolution(solverOutput string) (SATSolution, error) {
	lines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return strings.HasPrefix(line, "v ") || line == "v"
	})
	fields := lo.FlatMap(lines, func(line string, _ int) []string {
		return strings.Fields(line[1:])
	})

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

// seconds rounds a time limit up to whole seconds, the granularity every external solver accepts
func seconds(options Options) int64 {
	limit := options.TimeLimit
	if limit <= 0 {
		return 0
	}
	return int64((limit + 999_999_999) / 1_000_000_000)
}
