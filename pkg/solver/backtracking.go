package solver

import "github.com/limaJavier/boolsat/pkg/logic"

// GetSolution searches for a satisfying assignment of expr via backtracking.
// initial seeds bindings before the search begins (variables absent from it
// start Unset) and selector drives the branching order; either may be nil, in
// which case the search starts empty and uses FirstUnset. It returns a
// complete satisfying assignment, or nil if no extension of the seed
// satisfies expr. A nil result is a normal outcome, not an error.
//
// The search is single-threaded and runs to completion; a caller needing
// bounded search time must wrap it externally, e.g. with a deadline check
// inside a custom selector.
func GetSolution(expr logic.Expression, initial Assignment, selector VariableSelector) Assignment {
	if initial == nil {
		initial = Assignment{}
	}
	if selector == nil {
		selector = FirstUnset
	}
	return backtrack(expr, logic.Variables(expr), initial.Clone(), selector)
}

// backtrack explores the binary decision tree rooted at the given partial
// assignment. Each recursive call owns its own assignment copy. A branch is
// abandoned only once a full extension of it evaluates to false; there is no
// propagation, so the selector is the only lever against the 2^(n+1) - 1
// worst-case node count.
func backtrack(expr logic.Expression, variables []logic.Variable, assignments Assignment, selector VariableSelector) Assignment {
	selection := selector.Select(variables, assignments)
	if selection == nil { // The assignment is complete
		if logic.Evaluate(expr, assignments.Bools()) {
			return assignments
		}
		return nil
	}

	if solution := backtrack(expr, variables, assignments.bind(selection.Variable, Lift(selection.First)), selector); solution != nil {
		return solution
	}
	return backtrack(expr, variables, assignments.bind(selection.Variable, Lift(!selection.First)), selector)
}
