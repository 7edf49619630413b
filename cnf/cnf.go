package cnf

import (
	"sort"
	"strings"
)

// A CNF is a conjunction of clauses.
type CNF struct {
	clauses []Clause
}

// New returns the formula made of the given clauses. The clause slice is
// copied.
func New(clauses ...Clause) *CNF {
	f := &CNF{clauses: make([]Clause, len(clauses))}
	copy(f.clauses, clauses)
	return f
}

// Clauses returns the clauses of f. The returned slice must be treated as
// read-only.
func (f *CNF) Clauses() []Clause {
	return f.clauses
}

// Symbols returns the sorted set of distinct symbols appearing in f,
// i.e. the formula's signature.
func (f *CNF) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, c := range f.clauses {
		for _, l := range c.Literals() {
			if !seen[l.Symbol] {
				seen[l.Symbol] = true
				symbols = append(symbols, l.Symbol)
			}
		}
	}
	sort.Strings(symbols)
	return symbols
}

// CheckModel is true iff the given assignment satisfies every clause of f.
// A clause is satisfied when at least one of its literals matches the
// model's binding for its symbol. Literals over symbols the model does not
// bind are counted as unsatisfied, so an incomplete model never satisfies a
// clause that mentions a missing symbol.
func (f *CNF) CheckModel(model map[string]bool) bool {
	for _, c := range f.clauses {
		sat := false
		for _, l := range c.Literals() {
			if v, ok := model[l.Symbol]; ok && v == l.Positive {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

func (f *CNF) String() string {
	strs := make([]string, len(f.clauses))
	for i, c := range f.clauses {
		strs[i] = c.String()
	}
	return strings.Join(strs, " & ")
}
