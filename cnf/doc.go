// Package cnf describes propositional formulas in conjunctive normal form.
//
// A formula is a conjunction of clauses, each clause a disjunction of
// literals, each literal a named symbol or its negation. For the formula to
// be true under a model, every clause must contain at least one literal that
// the model makes true.
//
// For example, the formula
//
//	(a | !b) & (b | c) & !c
//
// is built with the following code:
//
//	f := cnf.New(
//	    cnf.NewClause(cnf.Pos("a"), cnf.Neg("b")),
//	    cnf.NewClause(cnf.Pos("b"), cnf.Pos("c")),
//	    cnf.NewClause(cnf.Neg("c")),
//	)
//
// and is satisfied by the model map[string]bool{"a": true, "b": true, "c": false}.
//
// The package also reads and writes the DIMACS CNF format, mapping the
// integer variable k to the symbol "xk".
package cnf
