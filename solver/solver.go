package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/dpll-sat/dpll/cnf"
)

// Stats are statistics about a search. They are updated during the
// search and can be read once Solve has returned.
type Stats struct {
	NbDecisions int // Nb of branching decisions made
	NbUnitProps int // Nb of literals forced by unit propagation
	NbPureLits  int // Nb of pure literals eliminated
	NbConflicts int // Nb of conflicts met
}

// A Solver solves a given CNF formula.
type Solver struct {
	// Verbose, if true, makes the solver trace decisions and
	// backtracks on its logger at debug level.
	Verbose bool
	// Stats hold counters about the last call to Solve.
	Stats Stats

	formula     cnf.Formula
	assumptions cnf.Model
	model       cnf.Model
	status      Status
	logger      logrus.FieldLogger
}

// An Option modifies a Solver at construction time.
type Option func(*Solver)

// WithLogger sets the logger used when Verbose is true.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) { s.logger = l }
}

// New returns a solver for the given formula. The formula is never
// modified: the search works on derived copies.
func New(f cnf.Formula, opts ...Option) *Solver {
	s := &Solver{
		formula: f,
		status:  Indet,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assume sets a partial assignment the search must extend. Each binding
// is applied as a forced literal before the search starts; if the
// bindings already contradict the formula, Solve returns Unsat without
// searching.
func (s *Solver) Assume(partial cnf.Model) {
	s.assumptions = partial
}

// Solve runs the search and returns Sat or Unsat. Unsat is a definitive
// result: the whole search tree was exhausted.
func (s *Solver) Solve() Status {
	s.Stats = Stats{}
	f := s.formula
	model := make(cnf.Model, len(s.assumptions))

	// Apply the caller's partial assignment upfront, as forced units.
	for _, v := range s.assumptions.Vars() {
		value := s.assumptions[v]
		model[v] = value
		var ok bool
		if f, ok = applyLiteral(f, cnf.NewLit(v, !value)); !ok {
			s.Stats.NbConflicts++
			s.status = Unsat
			return s.status
		}
	}

	if res, ok := s.search(f, model); ok {
		s.model = res
		s.status = Sat
	} else {
		s.status = Unsat
	}
	return s.status
}

// Model returns the model found by the last call to Solve. It is only
// meaningful when Solve returned Sat. The model may be partial:
// variables that were never constrained are left unassigned.
func (s *Solver) Model() cnf.Model {
	return s.model
}

// Status returns the status the last call to Solve ended with, or
// Indet if Solve was not called yet.
func (s *Solver) Status() Status {
	return s.status
}

// Solve finds a model of f extending the optional partial assignment,
// or returns Unsat. It is a shorthand for New, Assume and Solve.
func Solve(f cnf.Formula, partial cnf.Model) (cnf.Model, Status) {
	s := New(f)
	if partial != nil {
		s.Assume(partial)
	}
	if s.Solve() == Sat {
		return s.Model(), Sat
	}
	return nil, Unsat
}

// Satisfiable is true iff f has at least one satisfying assignment.
func Satisfiable(f cnf.Formula) bool {
	_, status := Solve(f, nil)
	return status == Sat
}
