package solver

import "github.com/proplogic/dpll/cnf"

// A clauseSet holds clauses keyed by their canonical literal-set rendering,
// so that two Equal clauses occupy one slot.
type clauseSet map[string]cnf.Clause

func newClauseSet(clauses ...cnf.Clause) clauseSet {
	s := make(clauseSet, len(clauses))
	for _, c := range clauses {
		s.add(c)
	}
	return s
}

// add puts c in the set and reports whether it was absent.
func (s clauseSet) add(c cnf.Clause) bool {
	k := c.Key()
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = c
	return true
}

func (s clauseSet) has(c cnf.Clause) bool {
	_, ok := s[c.Key()]
	return ok
}

func (s clauseSet) clone() clauseSet {
	out := make(clauseSet, len(s))
	for k, c := range s {
		out[k] = c
	}
	return out
}

// A litSet is the set of literals asserted by a set of unit clauses.
type litSet map[cnf.Literal]bool

// unitResolve resolves the clause c against the asserted unit literals.
// If c contains one of the unit literals it is already satisfied, so it is
// redundant and ok is false. Otherwise the result is c stripped of every
// literal whose negation is asserted; stripping them all yields cnf.False,
// a witness that the units contradict c.
func unitResolve(units litSet, c cnf.Clause) (resolved cnf.Clause, ok bool) {
	for _, l := range c.Literals() {
		if units[l] {
			return cnf.False, false
		}
	}
	var kept []cnf.Literal
	for _, l := range c.Literals() {
		if !units[l.Negation()] {
			kept = append(kept, l)
		}
	}
	return cnf.NewClause(kept...), true
}

// unitResolution saturates the regular clauses against the unit clauses.
//
// Each pass resolves every regular clause with the current unit set into a
// fresh output set: clauses resolved to a single literal are promoted to
// the unit set and trigger another pass, clauses resolved away as redundant
// are dropped, and everything else (the false clause included) carries
// over. Two complementary unit clauses derive the false clause directly.
// The loop ends on the first pass that grows no new unit, which is bound to
// happen: the unit set only ever grows and cannot exceed the number of
// distinct literals.
//
// The returned pair is the saturated (unit, regular) clause sets. The
// regular set contains cnf.False iff the input is unsatisfiable by unit
// resolution alone. Both input sets are treated as read-only snapshots;
// results are always built in fresh sets.
func unitResolution(units, regulars clauseSet) (clauseSet, clauseSet) {
	units = units.clone()
	regulars = regulars.clone()
	for {
		lits := make(litSet, len(units))
		for _, u := range units {
			lits[u.Unit()] = true
		}
		for l := range lits {
			if lits[l.Negation()] {
				regulars.add(cnf.False)
				break
			}
		}
		next := make(clauseSet, len(regulars))
		grew := false
		for _, c := range regulars {
			resolved, ok := unitResolve(lits, c)
			if !ok {
				continue
			}
			if resolved.IsUnit() {
				if units.add(resolved) {
					grew = true
				}
			} else {
				next.add(resolved)
			}
		}
		regulars = next
		if !grew {
			return units, regulars
		}
	}
}
