package solver

import "github.com/dpll-sat/dpll/cnf"

// Evaluate reports whether every clause of f is satisfied under m. A
// clause is satisfied iff at least one of its literals is assigned a
// value making it true; literals on unassigned variables are unknown
// and never satisfy a clause by themselves. A formula with no clauses
// is vacuously satisfied by any model, including the empty one.
func Evaluate(f cnf.Formula, m cnf.Model) bool {
	for _, c := range f {
		sat := false
		for i := 0; i < c.Len(); i++ {
			if m.Satisfies(c.Get(i)) {
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
