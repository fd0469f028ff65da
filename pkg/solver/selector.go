package solver

import (
	"github.com/limaJavier/boolsat/pkg/logic"
	"github.com/samber/lo"
)

// Selection names the next variable to branch on and which truth value to try
// first.
type Selection struct {
	Variable logic.Variable
	First    bool
}

// VariableSelector decides the branching order of the backtracking search.
// Select is called once per search node with the full variable list (in
// extraction order) and the current partial assignment. It must return nil
// only when no listed variable is Unset; otherwise it must return some
// currently-Unset variable together with the truth value to attempt first.
// The strategy is advisory for performance only: any legal return preserves
// correctness, but returning an already-assigned variable, or withholding nil
// while Unset variables remain, breaks the search and is not detected by the
// core.
type VariableSelector interface {
	Select(variables []logic.Variable, assignments Assignment) *Selection
}

// SelectorFunc adapts a plain function into a VariableSelector.
type SelectorFunc func(variables []logic.Variable, assignments Assignment) *Selection

func (f SelectorFunc) Select(variables []logic.Variable, assignments Assignment) *Selection {
	return f(variables, assignments)
}

// FirstUnset is the default strategy: branch on the first variable (in
// extraction order) still Unset and try false first.
var FirstUnset VariableSelector = SelectorFunc(func(variables []logic.Variable, assignments Assignment) *Selection {
	variable, ok := lo.Find(variables, func(variable logic.Variable) bool {
		return assignments[variable] == Unset
	})
	if !ok {
		return nil
	}
	return &Selection{Variable: variable, First: false}
})
