package solver

import (
	"reflect"
	"testing"

	"github.com/proplogic/dpll/cnf"
)

func TestDpllBranchOrder(t *testing.T) {
	// No unit clauses: both polarities of the first symbol, negative first.
	f := cnf.New(cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")))
	sp := NewDpllSearchSpace(f)
	expected := []State{{cnf.Neg("a")}, {cnf.Pos("a")}}
	if got := sp.Successors(sp.StartState()); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected successors %v, got %v", expected, got)
	}
}

func TestDpllForcedSuccessor(t *testing.T) {
	// (a | b) with !a forces b; neither symbol should be branched on.
	f := cnf.New(
		cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")),
		cnf.NewClause(cnf.Neg("a")),
	)
	sp := NewDpllSearchSpace(f)
	expected := []State{{cnf.Neg("a")}}
	if got := sp.Successors(sp.StartState()); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected successors %v, got %v", expected, got)
	}
	expected = []State{{cnf.Neg("a"), cnf.Pos("b")}}
	if got := sp.Successors(State{cnf.Neg("a")}); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected successors %v, got %v", expected, got)
	}
}

func TestDpllStateLiteralsForce(t *testing.T) {
	// No unit clauses in the formula; the forcing unit is derived from the
	// state's own literals. Under !a, (a | b) forces b, so !b must not be
	// offered.
	f := cnf.New(cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")))
	sp := NewDpllSearchSpace(f)
	expected := []State{{cnf.Neg("a"), cnf.Pos("b")}}
	if got := sp.Successors(State{cnf.Neg("a")}); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected successors %v, got %v", expected, got)
	}
}

func TestDpllDeadBranch(t *testing.T) {
	// Under !a and b, (a | !b) loses every literal, so the branch is dead
	// even though a symbol (c) is still undecided.
	f := cnf.New(
		cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")),
		cnf.NewClause(cnf.Pos("a"), cnf.Neg("b")),
		cnf.NewClause(cnf.Neg("a"), cnf.Pos("c")),
	)
	sp := NewDpllSearchSpace(f)
	if got := sp.Successors(State{cnf.Neg("a"), cnf.Pos("b")}); got != nil {
		t.Errorf("expected a dead branch, got successors %v", got)
	}
}

func TestDpllContradictoryFormula(t *testing.T) {
	f := cnf.New(cnf.NewClause(cnf.Pos("a")), cnf.NewClause(cnf.Neg("a")))
	sp := NewDpllSearchSpace(f)
	if got := sp.Successors(sp.StartState()); got != nil {
		t.Errorf("expected no successors for a contradictory formula, got %v", got)
	}
}

func TestDpllBaseCacheReused(t *testing.T) {
	f := cnf.New(
		cnf.NewClause(cnf.Neg("a")),
		cnf.NewClause(cnf.Pos("a"), cnf.Pos("b"), cnf.Pos("c")),
	)
	sp := NewDpllSearchSpace(f)
	// The constructor's fixpoint already strips a from the ternary clause.
	if !sp.baseUnits.has(cnf.NewClause(cnf.Neg("a"))) {
		t.Errorf("expected !a among base units, got %v", keys(sp.baseUnits))
	}
	if !sp.baseRegulars.has(cnf.NewClause(cnf.Pos("b"), cnf.Pos("c"))) {
		t.Errorf("expected (b | c) among base regulars, got %v", keys(sp.baseRegulars))
	}
	// Successor queries must not write the cache back.
	baseUnits := sp.baseUnits.clone()
	baseRegulars := sp.baseRegulars.clone()
	sp.Successors(sp.StartState())
	sp.Successors(State{cnf.Neg("a")})
	if !equalSets(sp.baseUnits, baseUnits) || !equalSets(sp.baseRegulars, baseRegulars) {
		t.Error("successor queries mutated the cached base resolution result")
	}
}

func TestDpllGoal(t *testing.T) {
	f := cnf.New(cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")), cnf.NewClause(cnf.Neg("a")))
	sp := NewDpllSearchSpace(f)
	if sp.IsGoal(State{cnf.Neg("a")}) {
		t.Error("a partial state cannot be a goal")
	}
	if !sp.IsGoal(State{cnf.Neg("a"), cnf.Pos("b")}) {
		t.Error("expected a goal state")
	}
	if sp.IsGoal(State{cnf.Neg("a"), cnf.Neg("b")}) {
		t.Error("a falsifying state cannot be a goal")
	}
}

func TestDpllBadState(t *testing.T) {
	f := cnf.New(cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")))
	sp := NewDpllSearchSpace(f)
	for _, bad := range []State{
		{cnf.Pos("a"), cnf.Pos("b"), cnf.Pos("c")},
		{cnf.Pos("b")},
		{cnf.Pos("a"), cnf.Pos("a")},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Successors(%v) should panic", bad)
				}
			}()
			sp.Successors(bad)
		}()
	}
}
