package solver

import (
	"github.com/proplogic/dpll/cnf"
	"github.com/proplogic/dpll/search"
)

// A SatSearchSpace enumerates every complete assignment of a formula's
// symbols in signature order, with no pruning at all: each state of length
// k branches on the (k+1)-th symbol of the signature, positive polarity
// first. It visits O(2^n) states in the worst case and exists as the
// correctness reference the DPLL space is checked against.
type SatSearchSpace struct {
	formula   *cnf.CNF
	signature []string
}

// NewSatSearchSpace returns a brute-force search space for f.
func NewSatSearchSpace(f *cnf.CNF) *SatSearchSpace {
	return &SatSearchSpace{formula: f, signature: f.Symbols()}
}

// StartState returns the empty assignment.
func (sp *SatSearchSpace) StartState() State {
	return nil
}

// IsGoal is true iff s assigns every symbol and the induced model satisfies
// the formula.
func (sp *SatSearchSpace) IsGoal(s State) bool {
	if len(s) < len(sp.signature) {
		return false
	}
	return sp.formula.CheckModel(s.Model())
}

// Successors returns the two extensions of s by the next undecided symbol,
// positive literal first, or nothing once every symbol is decided.
func (sp *SatSearchSpace) Successors(s State) []State {
	checkState(sp.signature, s)
	if len(s) == len(sp.signature) {
		return nil
	}
	next := sp.signature[len(s)]
	return []State{
		extend(s, cnf.Pos(next)),
		extend(s, cnf.Neg(next)),
	}
}

// SolveBrute searches for a model of f by plain enumeration. It returns the
// model and the number of states visited, or a nil model if f is
// unsatisfiable.
func SolveBrute(f *cnf.CNF) (map[string]bool, int) {
	goal, ok, visited := search.DFS[State](NewSatSearchSpace(f))
	if !ok {
		return nil, visited
	}
	return goal.Model(), visited
}
