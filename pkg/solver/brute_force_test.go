package solver

import (
	"testing"

	"github.com/limaJavier/boolsat/pkg/logic"
	"github.com/stretchr/testify/assert"
)

func TestBruteForceEnumerationOrder(t *testing.T) {
	// Arrange
	expr := logic.Or(logic.Variable("a"), logic.Variable("b"))

	// Act
	solutions := BruteForceAllSolutions(expr)

	// Assert: solutions keep the increasing-k enumeration order
	assert.Equal(t, []Assignment{
		{"a": False, "b": True},
		{"a": True, "b": False},
		{"a": True, "b": True},
	}, solutions)
}

func TestBruteForceXor(t *testing.T) {
	// Arrange
	expr := logic.Xor(logic.Variable("a"), logic.Variable("b"))

	// Act
	solutions := BruteForceAllSolutions(expr)

	// Assert
	assert.Equal(t, []Assignment{
		{"a": False, "b": True},
		{"a": True, "b": False},
	}, solutions)
}

func TestBruteForceUnsatisfiable(t *testing.T) {
	// Arrange
	expr := logic.And(logic.Variable("a"), logic.Not(logic.Variable("a")))

	// Act
	solutions := BruteForceAllSolutions(expr)

	// Assert
	assert.Empty(t, solutions)
}

func TestBruteForceVacuousExpressions(t *testing.T) {
	// An empty conjunction is satisfied by the single empty assignment
	assert.Equal(t, []Assignment{{}}, BruteForceAllSolutions(logic.And()))

	// An empty disjunction has no solution at all
	assert.Empty(t, BruteForceAllSolutions(logic.Or()))
}

func TestBruteForceMatchesEvaluation(t *testing.T) {
	// Arrange
	expr := GenerateExpression(6, 8)
	variables := logic.Variables(expr)
	n := len(variables)

	// Act
	solutions := BruteForceAllSolutions(expr)

	// Assert: the output is exactly the satisfying subset of all 2^n total
	// assignments, in enumeration order
	expected := []Assignment{}
	for k := 0; k < 1<<n; k++ {
		assignments := make(Assignment, n)
		for i, variable := range variables {
			assignments[variable] = Lift(k&(1<<(n-1-i)) != 0)
		}
		if logic.Evaluate(expr, assignments.Bools()) {
			expected = append(expected, assignments)
		}
	}
	assert.Equal(t, expected, solutions)
}
