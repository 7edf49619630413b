package cnf

import (
	"sort"
	"strings"
)

// A Clause is a disjunction of literals. Clauses are immutable once built.
// A clause with a single literal is a unit clause; a clause with no literals
// is the constant false.
type Clause struct {
	lits []Literal
}

// False is the canonical zero-literal clause. Deriving it during resolution
// proves the clause set unsatisfiable. Every zero-literal clause compares
// Equal to False, whatever way it was constructed.
var False = Clause{}

// NewClause returns the clause whose literals are given as arguments.
// The literal slice is copied.
func NewClause(lits ...Literal) Clause {
	if len(lits) == 0 {
		return False
	}
	c := Clause{lits: make([]Literal, len(lits))}
	copy(c.lits, lits)
	return c
}

// Literals returns the literals of c. The returned slice must be treated as
// read-only.
func (c Clause) Literals() []Literal {
	return c.lits
}

// Len returns the number of literals in c.
func (c Clause) Len() int {
	return len(c.lits)
}

// IsUnit is true iff c contains exactly one literal.
func (c Clause) IsUnit() bool {
	return len(c.lits) == 1
}

// IsFalse is true iff c contains no literals at all.
func (c Clause) IsFalse() bool {
	return len(c.lits) == 0
}

// Unit returns the sole literal of a unit clause.
// It panics if c is not a unit clause.
func (c Clause) Unit() Literal {
	if !c.IsUnit() {
		panic("cnf: Unit called on a non-unit clause " + c.String())
	}
	return c.lits[0]
}

// Contains is true iff l is one of c's literals.
func (c Clause) Contains(l Literal) bool {
	for _, cl := range c.lits {
		if cl == l {
			return true
		}
	}
	return false
}

// Equal is true iff c and other hold the same set of literals, whatever
// their order or multiplicity.
func (c Clause) Equal(other Clause) bool {
	return c.Key() == other.Key()
}

// Key returns a canonical rendering of c's literal set, identical for any
// two Equal clauses. It is suitable as a map key when clause sets are
// needed.
func (c Clause) Key() string {
	if len(c.lits) == 0 {
		return ""
	}
	strs := make([]string, len(c.lits))
	for i, l := range c.lits {
		strs[i] = l.String()
	}
	sort.Strings(strs)
	uniq := strs[:1]
	for _, s := range strs[1:] {
		if s != uniq[len(uniq)-1] {
			uniq = append(uniq, s)
		}
	}
	return strings.Join(uniq, "|")
}

func (c Clause) String() string {
	if len(c.lits) == 0 {
		return "FALSE"
	}
	strs := make([]string, len(c.lits))
	for i, l := range c.lits {
		strs[i] = l.String()
	}
	return "(" + strings.Join(strs, " | ") + ")"
}
