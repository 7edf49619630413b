/*
Package solver decides the satisfiability of CNF formulas with the DPLL
algorithm: a depth-first search over partial assignments, pruned at every
node by unit resolution.

The search assigns the formula's symbols one at a time, in sorted signature
order, so a search state is the sequence of literals decided so far. Before
branching on the next symbol, the solver saturates the clause set against
the units implied by the current state. Three things can come out of that:

  - the empty clause is derived: the branch cannot be completed, and the
    search backtracks without descending further;
  - a unit clause over the next symbol is derived: that polarity is forced,
    and the search descends into a single successor;
  - neither: both polarities are tried.

Solve returns a model as a map from symbol names to booleans:

	f := cnf.New(
	    cnf.NewClause(cnf.Pos("a"), cnf.Pos("b")),
	    cnf.NewClause(cnf.Neg("a")),
	)
	model := solver.Solve(f) // map[a:false b:true]

A nil model means the formula is unsatisfiable. That is an ordinary answer,
not an error.

The package also ships a brute-force solver, SolveBrute, that enumerates
complete assignments with no pruning. It exists as a correctness reference
for the DPLL machinery and visits at least as many states on every formula.
*/
package solver
