package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/dpll-sat/dpll/cnf"
)

// search is the DPLL core. It owns model: callers must pass a copy they
// are willing to abandon. ok is false iff no assignment extending model
// satisfies f.
func (s *Solver) search(f cnf.Formula, model cnf.Model) (res cnf.Model, ok bool) {
	if len(f) == 0 {
		return model, true
	}
	for _, c := range f {
		if c.Len() == 0 {
			s.Stats.NbConflicts++
			return nil, false
		}
	}

	f, ok = s.simplify(f, model)
	if !ok {
		return nil, false
	}
	if len(f) == 0 {
		return model, true
	}

	lit := chooseBranchLit(f, model)
	s.Stats.NbDecisions++
	if s.Verbose {
		s.logger.WithFields(logrus.Fields{
			"lit":     lit.String(),
			"clauses": len(f),
		}).Debug("branching")
	}

	// Try the literal true first, then its negation. The pre-branch
	// formula and model survive untouched, so failing a polarity is a
	// plain retry with the other one.
	for _, branch := range [2]cnf.Lit{lit, lit.Negation()} {
		next := model.Copy()
		if !next.Assign(branch) {
			continue
		}
		reduced, ok := applyLiteral(f, branch)
		if !ok {
			s.Stats.NbConflicts++
			continue
		}
		if res, ok := s.search(reduced, next); ok {
			return res, true
		}
	}
	if s.Verbose {
		s.logger.WithField("lit", lit.String()).Debug("both polarities failed, backtracking")
	}
	return nil, false
}

// chooseBranchLit picks the literal to branch on: the smallest
// unassigned literal of the smallest clause still containing an
// unassigned variable. Small clauses are close to becoming units, so
// deciding in them maximizes propagation; ties keep the first clause in
// formula order, making the choice fully deterministic.
func chooseBranchLit(f cnf.Formula, model cnf.Model) cnf.Lit {
	var best *cnf.Clause
	for _, c := range f {
		if !hasUnassigned(c, model) {
			continue
		}
		if best == nil || c.Len() < best.Len() {
			best = c
		}
	}
	if best == nil {
		// Every literal left is assigned; fall back to the smallest
		// clause overall.
		for _, c := range f {
			if best == nil || c.Len() < best.Len() {
				best = c
			}
		}
		return best.First()
	}
	for i := 0; i < best.Len(); i++ {
		if _, assigned := model.Value(best.Get(i).Var()); !assigned {
			return best.Get(i)
		}
	}
	panic("clause with unassigned variable yielded none")
}

func hasUnassigned(c *cnf.Clause, model cnf.Model) bool {
	for i := 0; i < c.Len(); i++ {
		if _, assigned := model.Value(c.Get(i).Var()); !assigned {
			return true
		}
	}
	return false
}
