package logic

import "log"

// Evaluate returns the truth value of expr under assignment. Every variable
// reachable from expr must be bound in assignment: evaluating an unbound
// variable is a precondition violation and panics instead of guessing a
// value. A node outside the And/Or/Not/Variable variants means the
// construction invariant was bypassed and panics as well.
func Evaluate(expr Expression, assignment map[Variable]bool) bool {
	switch node := expr.(type) {
	case Variable:
		value, bound := assignment[node]
		if !bound {
			log.Panicf("variable \"%v\" is not bound in the assignment", node)
		}
		return value
	case conjunction:
		for _, operand := range node.operands {
			if !Evaluate(operand, assignment) {
				return false
			}
		}
		return true
	case disjunction:
		for _, operand := range node.operands {
			if Evaluate(operand, assignment) {
				return true
			}
		}
		return false
	case negation:
		return !Evaluate(node.operand, assignment)
	default:
		log.Panicf("unknown expression node: %v", expr)
		return false
	}
}
