package solver

import (
	"log"

	"github.com/limaJavier/boolsat/pkg/logic"
	"github.com/samber/lo"
)

// Value is a lifted boolean: a variable is either not yet decided (Unset) or
// bound to True or False. Unset is a distinct state, never an implicit false.
type Value int8

const (
	Unset Value = 0
	True  Value = 1
	False Value = -1
)

// Lift returns the Value corresponding to the given bool.
func Lift(b bool) Value {
	if b {
		return True
	}
	return False
}

// Bool returns the concrete boolean behind the value. Calling it on Unset is
// a precondition violation and panics.
func (v Value) Bool() bool {
	if v == Unset {
		log.Panicf("cannot read the boolean behind an unset value")
	}
	return v == True
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// Assignment maps variables to lifted boolean values. Variables absent from
// the map are Unset.
type Assignment map[logic.Variable]Value

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	clone := make(Assignment, len(a)+1)
	for variable, value := range a {
		clone[variable] = value
	}
	return clone
}

// bind returns a copy of the assignment extended with one binding. The
// receiver is never mutated, so sibling search branches cannot observe each
// other's intermediate bindings.
func (a Assignment) bind(variable logic.Variable, value Value) Assignment {
	clone := a.Clone()
	clone[variable] = value
	return clone
}

// Complete reports whether every given variable is bound to True or False.
func (a Assignment) Complete(variables []logic.Variable) bool {
	return lo.EveryBy(variables, func(variable logic.Variable) bool {
		return a[variable] != Unset
	})
}

// Bools projects the assignment onto concrete booleans for evaluation. Every
// entry must be bound.
func (a Assignment) Bools() map[logic.Variable]bool {
	bools := make(map[logic.Variable]bool, len(a))
	for variable, value := range a {
		bools[variable] = value.Bool()
	}
	return bools
}
