package solver

import (
	"github.com/proplogic/dpll/cnf"
	"github.com/proplogic/dpll/search"
)

// A DpllSearchSpace explores the same assignments as SatSearchSpace but
// prunes with unit resolution at every node. The formula's own clauses are
// partitioned into unit and regular sets and saturated once at
// construction; that base pair depends only on the formula, so every
// successor query reuses it, conjoined with the current state's literals.
type DpllSearchSpace struct {
	formula   *cnf.CNF
	signature []string

	// Saturated at construction, read-only afterwards.
	baseUnits    clauseSet
	baseRegulars clauseSet
}

// NewDpllSearchSpace returns a DPLL search space for f.
func NewDpllSearchSpace(f *cnf.CNF) *DpllSearchSpace {
	units := newClauseSet()
	regulars := newClauseSet()
	for _, c := range f.Clauses() {
		if c.IsUnit() {
			units.add(c)
		} else {
			regulars.add(c)
		}
	}
	units, regulars = unitResolution(units, regulars)
	return &DpllSearchSpace{
		formula:      f,
		signature:    f.Symbols(),
		baseUnits:    units,
		baseRegulars: regulars,
	}
}

// StartState returns the empty assignment.
func (sp *DpllSearchSpace) StartState() State {
	return nil
}

// IsGoal is true iff s assigns every symbol and the induced model satisfies
// the formula. The model is re-checked against the formula itself, not
// against the resolution bookkeeping, so a propagation bug cannot turn an
// unsatisfying assignment into an answer.
func (sp *DpllSearchSpace) IsGoal(s State) bool {
	if len(s) < len(sp.signature) {
		return false
	}
	return sp.formula.CheckModel(s.Model())
}

// Successors returns the extensions of s by the next undecided symbol,
// after saturating the base clause sets against s's literals:
//
//   - the false clause was derived: no successors, the branch is dead;
//   - a unit over the next symbol was derived: that polarity is forced and
//     the single matching extension is returned;
//   - otherwise both polarities, negative literal first.
func (sp *DpllSearchSpace) Successors(s State) []State {
	checkState(sp.signature, s)
	if len(s) == len(sp.signature) {
		return nil
	}
	units := sp.baseUnits.clone()
	for _, l := range s {
		units.add(cnf.NewClause(l))
	}
	units, regulars := unitResolution(units, sp.baseRegulars)
	if regulars.has(cnf.False) {
		return nil
	}
	next := sp.signature[len(s)]
	for _, u := range units {
		if l := u.Unit(); l.Symbol == next {
			return []State{extend(s, l)}
		}
	}
	return []State{
		extend(s, cnf.Neg(next)),
		extend(s, cnf.Pos(next)),
	}
}

// Solve searches for a model of f with the DPLL algorithm. It returns nil
// if f is unsatisfiable.
func Solve(f *cnf.CNF) map[string]bool {
	model, _ := SolveWithStats(f)
	return model
}

// SolveWithStats is Solve, additionally reporting the number of search
// states visited.
func SolveWithStats(f *cnf.CNF) (map[string]bool, int) {
	goal, ok, visited := search.DFS[State](NewDpllSearchSpace(f))
	if !ok {
		return nil, visited
	}
	return goal.Model(), visited
}
