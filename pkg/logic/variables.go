package logic

import (
	"log"

	"github.com/samber/lo"
)

// Variables returns the distinct variables referenced by expr, in
// first-occurrence order of a pre-order, left-to-right traversal. The order
// is observable: it fixes the default branching order of the backtracking
// solver and the bit positions of the brute-force enumeration, and is
// deterministic for the same expression across runs.
func Variables(expr Expression) []Variable {
	seen := make(map[Variable]bool)
	variables := make([]Variable, 0)
	collectVariables(expr, seen, &variables)
	return variables
}

func collectVariables(expr Expression, seen map[Variable]bool, variables *[]Variable) {
	switch node := expr.(type) {
	case Variable:
		if !seen[node] {
			seen[node] = true
			*variables = append(*variables, node)
		}
	case conjunction:
		lo.ForEach(node.operands, func(operand Expression, _ int) {
			collectVariables(operand, seen, variables)
		})
	case disjunction:
		lo.ForEach(node.operands, func(operand Expression, _ int) {
			collectVariables(operand, seen, variables)
		})
	case negation:
		collectVariables(node.operand, seen, variables)
	default:
		log.Panicf("unknown expression node: %v", expr)
	}
}
