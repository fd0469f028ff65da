package solver

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/boolsat/pkg/logic"
)

// GenerateExpression builds a random clause-shaped expression (a conjunction
// of disjunctions of plain or negated variables) over the given number of
// variables.
func GenerateExpression(variables uint64, clauses int) logic.Expression {
	operands := make([]logic.Expression, 0, clauses)
	for range clauses {
		literals := make([]logic.Expression, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.5 {
				literals = append(literals, literal(1+j))
			}
		}

		if len(literals) == 0 {
			literals = append(literals, literal(1+rand.Uint64N(variables)))
		}

		operands = append(operands, logic.Or(literals...))
	}
	return logic.And(operands...)
}

func literal(variable uint64) logic.Expression {
	leaf := logic.Variable(fmt.Sprintf("x%v", variable))
	if rand.Float32() < 0.5 {
		return logic.Not(leaf)
	}
	return leaf
}

// AssertSolution checks independently that solution binds every variable of
// expr and satisfies it.
func AssertSolution(expr logic.Expression, solution Assignment) bool {
	variables := logic.Variables(expr)
	if !solution.Complete(variables) {
		return false
	}
	return logic.Evaluate(expr, solution.Bools())
}
