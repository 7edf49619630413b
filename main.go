// Command dpll is a small SAT solver for DIMACS CNF files.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proplogic/dpll/cnf"
	"github.com/proplogic/dpll/solver"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		verbose bool
		brute   bool
	)
	cmd := &cobra.Command{
		Use:   "dpll [flags] file.cnf",
		Short: "decide the satisfiability of a DIMACS CNF file",
		Long: `dpll reads a problem in the DIMACS CNF format and decides its
satisfiability with the DPLL algorithm: depth-first search over partial
assignments, pruned by unit resolution.

The first output line is SAT or UNSAT. For satisfiable problems the
following lines give the model, one "symbol=value" pair per line. An
unsatisfiable problem is an ordinary answer: the exit code is 0 either way,
and non-zero only for unreadable or malformed input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose, brute)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solving statistics")
	cmd.Flags().BoolVar(&brute, "brute", false, "solve by plain enumeration instead of DPLL")
	return cmd
}

func run(path string, verbose, brute bool) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("could not open %q: %v", path, err)
		return err
	}
	defer f.Close()

	formula, err := cnf.ParseDIMACS(f)
	if err != nil {
		log.Errorf("could not parse %q: %v", path, err)
		return err
	}
	log.WithFields(logrus.Fields{
		"symbols": len(formula.Symbols()),
		"clauses": len(formula.Clauses()),
	}).Debug("parsed problem")

	var (
		model   map[string]bool
		visited int
	)
	if brute {
		model, visited = solver.SolveBrute(formula)
	} else {
		model, visited = solver.SolveWithStats(formula)
	}
	log.WithField("visited", visited).Debug("search finished")

	if model == nil {
		fmt.Println("UNSAT")
		return nil
	}
	fmt.Println("SAT")
	symbols := make([]string, 0, len(model))
	for s := range model {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		fmt.Printf("%s=%t\n", s, model[s])
	}
	return nil
}
