package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a problem in the DIMACS CNF format and returns the
// equivalent formula. The integer variable k is mapped to the symbol "xk".
//
// Comment lines ("c ..."), blank lines and everything after a "%" marker are
// ignored. Clauses are 0-terminated lists of non-zero integers and may span
// several lines. A clause terminated before its first literal is rejected:
// a formula containing an empty clause is trivially unsatisfiable and is
// considered a malformed input rather than a problem worth solving.
func ParseDIMACS(r io.Reader) (*CNF, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		seenHeader bool
		nbVars     int
		nbClauses  int
		clauses    []Clause
		cur        []Literal
		lineNo     int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "%") {
			break
		}
		if !seenHeader {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("line %d: expected \"p cnf <vars> <clauses>\", got %q", lineNo, line)
			}
			var err error
			if nbVars, err = strconv.Atoi(fields[2]); err != nil || nbVars < 0 {
				return nil, fmt.Errorf("line %d: invalid variable count %q", lineNo, fields[2])
			}
			if nbClauses, err = strconv.Atoi(fields[3]); err != nil || nbClauses < 0 {
				return nil, fmt.Errorf("line %d: invalid clause count %q", lineNo, fields[3])
			}
			seenHeader = true
			continue
		}
		for _, tok := range strings.Fields(line) {
			val, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: non-integer token %q", lineNo, tok)
			}
			if val == 0 {
				if len(cur) == 0 {
					return nil, fmt.Errorf("line %d: empty clause", lineNo)
				}
				clauses = append(clauses, NewClause(cur...))
				cur = cur[:0]
				continue
			}
			v := val
			if v < 0 {
				v = -v
			}
			if v > nbVars {
				return nil, fmt.Errorf("line %d: literal %d out of range 1..%d", lineNo, val, nbVars)
			}
			sym := "x" + strconv.Itoa(v)
			if val > 0 {
				cur = append(cur, Pos(sym))
			} else {
				cur = append(cur, Neg(sym))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read DIMACS input: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("missing \"p cnf\" header")
	}
	if len(cur) != 0 {
		return nil, fmt.Errorf("unterminated clause %v at end of input", cur)
	}
	if len(clauses) != nbClauses {
		return nil, fmt.Errorf("clause count mismatch: header says %d, saw %d", nbClauses, len(clauses))
	}
	return New(clauses...), nil
}

// WriteDIMACS writes f on w in the DIMACS CNF format.
// The symbol-to-variable mapping is listed in comment lines between the
// header and the clauses, one "c <symbol>=<variable>" line per symbol in
// signature order.
func (f *CNF) WriteDIMACS(w io.Writer) error {
	symbols := f.Symbols()
	idx := make(map[string]int, len(symbols))
	for i, s := range symbols {
		idx[s] = i + 1
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(symbols), len(f.clauses)); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	for _, s := range symbols {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", s, idx[s]); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	for _, c := range f.clauses {
		strs := make([]string, 0, c.Len()+1)
		for _, l := range c.Literals() {
			v := idx[l.Symbol]
			if !l.Positive {
				v = -v
			}
			strs = append(strs, strconv.Itoa(v))
		}
		strs = append(strs, "0")
		if _, err := fmt.Fprintln(w, strings.Join(strs, " ")); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}
