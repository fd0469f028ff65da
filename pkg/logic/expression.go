package logic

import (
	"slices"
	"strings"
)

// Variable is an atomic boolean identifier, the leaf of an expression tree.
type Variable string

// Expression is an immutable boolean formula over variables combined with
// conjunction, disjunction and negation. Expressions can only be built through
// the package constructors, so a tree is acyclic by construction and no node
// is ever mutated in place.
type Expression interface {
	String() string
	expression()
}

type conjunction struct {
	operands []Expression
}

type disjunction struct {
	operands []Expression
}

type negation struct {
	operand Expression
}

func (Variable) expression()    {}
func (conjunction) expression() {}
func (disjunction) expression() {}
func (negation) expression()    {}

// And returns the conjunction of its operands: true iff every operand is
// true. An empty conjunction is vacuously true.
func And(operands ...Expression) Expression {
	return conjunction{operands: slices.Clone(operands)}
}

// Or returns the disjunction of its operands: true iff at least one operand
// is true. An empty disjunction is vacuously false.
func Or(operands ...Expression) Expression {
	return disjunction{operands: slices.Clone(operands)}
}

// Not returns the negation of its operand.
func Not(operand Expression) Expression {
	return negation{operand: operand}
}

// Implies returns an expression equivalent to "a implies b", rewritten as
// or(not(a), b). It introduces no new node kind.
func Implies(a, b Expression) Expression {
	return Or(Not(a), b)
}

// Xor returns an expression that's true iff exactly one of a and b is true,
// rewritten as or(and(a, not(b)), and(not(a), b)). Both operands are
// duplicated across the two branches, so nesting xor inside xor doubles the
// expression size per nesting level.
func Xor(a, b Expression) Expression {
	return Or(And(a, Not(b)), And(Not(a), b))
}

func (v Variable) String() string {
	return string(v)
}

func (c conjunction) String() string {
	return renderOperands("and", c.operands)
}

func (d disjunction) String() string {
	return renderOperands("or", d.operands)
}

func (n negation) String() string {
	return renderOperands("not", []Expression{n.operand})
}

func renderOperands(operator string, operands []Expression) string {
	var builder strings.Builder
	builder.WriteString(operator)
	builder.WriteString("(")
	for i, operand := range operands {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(operand.String())
	}
	builder.WriteString(")")
	return builder.String()
}
