package cnf

import "strings"

// A Formula is an ordered conjunction of clauses. Clause order is
// preserved and logically identical clauses are not collapsed. An empty
// formula is trivially satisfied; a formula containing an empty clause
// is unsatisfiable.
//
// Formulas are immutable once built: simplification allocates new
// formulas instead of rewriting in place, so a backtracking search can
// discard a derived formula and retry from the previous one.
type Formula []*Clause

// NewFormula builds a formula from signed literals, e.g.
// [][]int{{1, -2}, {2}}. The negation of variable 0 cannot be written
// this way; use ParseFormula or ParseInstances for it.
func NewFormula(clauses [][]int) Formula {
	f := make(Formula, len(clauses))
	for i, c := range clauses {
		lits := make([]Lit, len(c))
		for j, v := range c {
			lits[j] = LitFromInt(v)
		}
		f[i] = NewClause(lits)
	}
	return f
}

// ParseFormula builds a formula from literal tokens, e.g.
// [][]string{{"1", "-2"}, {"-0"}}.
func ParseFormula(clauses [][]string) (Formula, error) {
	f := make(Formula, len(clauses))
	for i, toks := range clauses {
		c, err := ParseClause(toks)
		if err != nil {
			return nil, err
		}
		f[i] = c
	}
	return f, nil
}

// Vars returns the set of variables occurring in the formula.
func (f Formula) Vars() map[Var]bool {
	vars := make(map[Var]bool)
	for _, c := range f {
		for i := 0; i < c.Len(); i++ {
			vars[c.Get(i).Var()] = true
		}
	}
	return vars
}

// String returns the formula in instance syntax, one clause per line.
func (f Formula) String() string {
	lines := make([]string, len(f))
	for i, c := range f {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
