package solver

import (
	"testing"

	"github.com/limaJavier/boolsat/pkg/logic"
	"github.com/stretchr/testify/assert"
)

func TestSolvers(t *testing.T) {
	// Arrange
	a, b := logic.Variable("a"), logic.Variable("b")
	satisfiable := logic.And(a, logic.Not(b))
	unsatisfiable := logic.And(a, logic.Not(a))

	solvers := map[string]Solver{
		"bruteforce":   NewBruteForceSolver(),
		"backtracking": NewBacktrackingSolver(nil, nil),
	}

	for name, solver := range solvers {
		t.Run(name, func(t *testing.T) {
			// Act
			solution, err := solver.Solve(satisfiable)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, Assignment{"a": True, "b": False}, solution)

			// Act
			solution, err = solver.Solve(unsatisfiable)

			// Assert: nil solution with nil error means unsatisfiable
			assert.NoError(t, err)
			assert.Nil(t, solution)
		})
	}
}

func TestBacktrackingSolverWithSeedAndSelector(t *testing.T) {
	// Arrange
	a, b := logic.Variable("a"), logic.Variable("b")
	expr := logic.Xor(a, b)
	solver := NewBacktrackingSolver(Assignment{"a": True}, lastUnset)

	// Act
	solution, err := solver.Solve(expr)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, Assignment{"a": True, "b": False}, solution)
}
