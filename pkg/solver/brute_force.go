package solver

import "github.com/limaJavier/boolsat/pkg/logic"

// BruteForceAllSolutions enumerates every total assignment over the variables
// of expr and returns the ones that satisfy it. Assignment k (for k from 0 to
// 2^n - 1, in increasing order) binds variables[i] to true iff bit i, counted
// from the most-significant end of the n-bit representation of k, is set;
// results keep the increasing-k order. Cost is O(2^n * |expr|), so this is a
// correctness oracle for small variable counts, not a scalable solver.
func BruteForceAllSolutions(expr logic.Expression) []Assignment {
	variables := logic.Variables(expr)
	n := len(variables)

	solutions := []Assignment{}
	for k := 0; k < 1<<n; k++ {
		assignments := make(Assignment, n)
		for i, variable := range variables {
			assignments[variable] = Lift(k&(1<<(n-1-i)) != 0)
		}

		if logic.Evaluate(expr, assignments.Bools()) {
			solutions = append(solutions, assignments)
		}
	}
	return solutions
}
