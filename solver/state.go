package solver

import (
	"fmt"

	"github.com/proplogic/dpll/cnf"
)

// A State is a partial assignment: one literal per decided symbol, in
// signature order. The i-th literal is always over the i-th symbol of the
// formula's signature, so a state never binds a symbol twice and a
// full-length state is a complete assignment.
type State []cnf.Literal

// Model returns the assignment induced by s.
func (s State) Model() map[string]bool {
	model := make(map[string]bool, len(s))
	for _, l := range s {
		model[l.Symbol] = l.Positive
	}
	return model
}

func (s State) String() string {
	return fmt.Sprint([]cnf.Literal(s))
}

// extend returns a copy of s with l appended. Successor states must not
// share backing arrays: the search driver holds several extensions of the
// same prefix at once.
func extend(s State, l cnf.Literal) State {
	next := make(State, len(s)+1)
	copy(next, s)
	next[len(s)] = l
	return next
}

// checkState verifies the State invariant against the signature.
// A state longer than the signature, or holding a literal over the wrong
// symbol, can only come from a caller bug, so it is a fatal error rather
// than something to repair silently.
func checkState(signature []string, s State) {
	if len(s) > len(signature) {
		panic(fmt.Sprintf("solver: state %v is longer than the %d-symbol signature", s, len(signature)))
	}
	for i, l := range s {
		if l.Symbol != signature[i] {
			panic(fmt.Sprintf("solver: state %v binds %q at position %d, want %q", s, l.Symbol, i, signature[i]))
		}
	}
}
