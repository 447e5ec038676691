package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolution(t *testing.T) {
	t.Run("Multiple value lines", func(t *testing.T) {
		output := "c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 5 0\n"

		solution, err := parseSolution(output)

		require.NoError(t, err)
		assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, solution)
	})

	t.Run("No value lines", func(t *testing.T) {
		solution, err := parseSolution("s SATISFIABLE\n")

		require.NoError(t, err)
		assert.Empty(t, solution)
	})

	t.Run("Invalid literal", func(t *testing.T) {
		_, err := parseSolution("v 1 x 0\n")

		assert.Error(t, err)
	})
}

func TestParseMinisatSolution(t *testing.T) {
	solver := &minisatSolver{}

	solution, err := solver.parseSolution("SAT\n-1 2 -3 0\n")
	require.NoError(t, err)
	assert.Equal(t, SATSolution{-1, 2, -3}, solution)

	_, err = solver.parseSolution("UNSAT\n")
	assert.Error(t, err)
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, int64(0), seconds(Options{}))
	assert.Equal(t, int64(1), seconds(Options{TimeLimit: 1}))
	assert.Equal(t, int64(2), seconds(Options{TimeLimit: 1_500_000_000}))
	assert.Equal(t, int64(3), seconds(Options{TimeLimit: 3_000_000_000}))
}
