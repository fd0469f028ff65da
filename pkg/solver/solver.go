package solver

import "github.com/limaJavier/boolsat/pkg/logic"

type Solver interface {
	Solve(expr logic.Expression) (Assignment, error) // Returns a satisfying assignment of the expression if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

type bruteForceSolver struct{}

func NewBruteForceSolver() Solver {
	return &bruteForceSolver{}
}

func (solver *bruteForceSolver) Solve(expr logic.Expression) (Assignment, error) {
	solutions := BruteForceAllSolutions(expr)
	if len(solutions) == 0 {
		return nil, nil
	}
	return solutions[0], nil
}

type backtrackingSolver struct {
	initial  Assignment
	selector VariableSelector
}

// NewBacktrackingSolver wraps GetSolution behind the Solver interface. Both
// initial and selector may be nil.
func NewBacktrackingSolver(initial Assignment, selector VariableSelector) Solver {
	return &backtrackingSolver{
		initial:  initial,
		selector: selector,
	}
}

func (solver *backtrackingSolver) Solve(expr logic.Expression) (Assignment, error) {
	return GetSolution(expr, solver.initial, solver.selector), nil
}
