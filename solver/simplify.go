package solver

import (
	"sort"

	"github.com/dpll-sat/dpll/cnf"
)

// applyLiteral rewrites f under the assumption that lit is true: every
// clause containing lit is dropped, and lit's negation is removed from
// the remaining clauses. ok is false if a clause becomes empty, i.e the
// assumption conflicts with f. f itself is never modified.
func applyLiteral(f cnf.Formula, lit cnf.Lit) (out cnf.Formula, ok bool) {
	neg := lit.Negation()
	out = make(cnf.Formula, 0, len(f))
	for _, c := range f {
		switch {
		case c.Has(lit):
			continue
		case c.Has(neg):
			reduced := c.Without(neg)
			if reduced.Len() == 0 {
				return nil, false
			}
			out = append(out, reduced)
		default:
			out = append(out, c)
		}
	}
	return out, true
}

// findUnit returns the first unit clause's literal, if any.
func findUnit(f cnf.Formula) (cnf.Lit, bool) {
	for _, c := range f {
		if c.Len() == 1 {
			return c.First(), true
		}
	}
	return 0, false
}

// propagateUnits applies unit propagation to a fixed point: while some
// clause has a single literal left, that literal is forced true and the
// formula rewritten accordingly. ok is false on conflict, either because
// the forced literal contradicts the model or because a clause became
// empty.
func (s *Solver) propagateUnits(f cnf.Formula, model cnf.Model) (cnf.Formula, bool) {
	for {
		unit, found := findUnit(f)
		if !found {
			return f, true
		}
		if !model.Assign(unit) {
			s.Stats.NbConflicts++
			return nil, false
		}
		s.Stats.NbUnitProps++
		var ok bool
		if f, ok = applyLiteral(f, unit); !ok {
			s.Stats.NbConflicts++
			return nil, false
		}
	}
}

// pureLiterals returns, in ascending literal order, one literal per
// unassigned variable whose occurrences in f all share the same
// polarity.
func pureLiterals(f cnf.Formula, model cnf.Model) []cnf.Lit {
	type polarity struct{ pos, neg bool }
	seen := make(map[cnf.Var]*polarity)
	for _, c := range f {
		for i := 0; i < c.Len(); i++ {
			lit := c.Get(i)
			if _, assigned := model.Value(lit.Var()); assigned {
				continue
			}
			p := seen[lit.Var()]
			if p == nil {
				p = &polarity{}
				seen[lit.Var()] = p
			}
			if lit.Negated() {
				p.neg = true
			} else {
				p.pos = true
			}
		}
	}
	var pures []cnf.Lit
	for v, p := range seen {
		if p.pos != p.neg {
			pures = append(pures, cnf.NewLit(v, p.neg))
		}
	}
	sort.Slice(pures, func(i, j int) bool { return pures[i] < pures[j] })
	return pures
}

// eliminatePures applies pure-literal elimination to a fixed point:
// each pure literal can be set true without changing satisfiability,
// dropping every clause that contains it. ok is false on conflict.
func (s *Solver) eliminatePures(f cnf.Formula, model cnf.Model) (cnf.Formula, bool) {
	for {
		pures := pureLiterals(f, model)
		if len(pures) == 0 {
			return f, true
		}
		for _, lit := range pures {
			if !model.Assign(lit) {
				s.Stats.NbConflicts++
				return nil, false
			}
			s.Stats.NbPureLits++
			var ok bool
			if f, ok = applyLiteral(f, lit); !ok {
				s.Stats.NbConflicts++
				return nil, false
			}
		}
	}
}

// simplify interleaves unit propagation and pure-literal elimination
// until a full round leaves the formula unchanged, since each rule can
// enable the other. ok is false on conflict.
func (s *Solver) simplify(f cnf.Formula, model cnf.Model) (cnf.Formula, bool) {
	for {
		before := f
		var ok bool
		if f, ok = s.propagateUnits(f, model); !ok {
			return nil, false
		}
		if f, ok = s.eliminatePures(f, model); !ok {
			return nil, false
		}
		if len(f) == 0 || sameFormula(f, before) {
			return f, true
		}
	}
}

// sameFormula is true iff both formulas hold the same clauses in the
// same order. Rewrites always allocate, so comparing clause pointers is
// enough to detect that a round changed nothing.
func sameFormula(f, g cnf.Formula) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i] != g[i] {
			return false
		}
	}
	return true
}
