// Package cdcl implements the conflict-driven clause-learning core of the
// solver: the clause database, assignment trail, unit propagator,
// frequency-based decision heuristic, conflict analyzer, and the search
// driver that ties them together. Nothing outside this package may
// observe the solver's internal state except through Solver's exported
// methods; parsing and result formatting are deliberately kept in their
// own packages (see internal/dimacs and internal/format).
package cdcl

import "fmt"

// Literal is a nonzero signed integer: positive means the corresponding
// variable is asserted true, negative means it is asserted false.
// Variables are numbered from 1 in the public encoding; Var returns the
// zero-based variable index (|literal| - 1) used to index the solver's
// per-variable slices.
type Literal int32

// NewLiteral returns the literal for the zero-based variable v with the
// given polarity.
func NewLiteral(v int, positive bool) Literal {
	if positive {
		return Literal(v + 1)
	}
	return Literal(-(v + 1))
}

// Var returns the zero-based index of the literal's variable.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l) - 1
	}
	return int(l) - 1
}

// IsPositive reports whether the literal asserts its variable true.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("x%d", l.Var()+1)
	}
	return fmt.Sprintf("-x%d", l.Var()+1)
}
