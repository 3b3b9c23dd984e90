package cnf

import (
	"sort"
	"strings"
)

// A Model maps variables to truth values. It may be partial: variables
// absent from the map are unassigned.
type Model map[Var]bool

// Assign records that l is true, i.e binds l's variable to the value
// making l true. It reports false if the variable is already bound to
// the opposite value; the model is left unchanged in that case.
func (m Model) Assign(l Lit) bool {
	value := !l.Negated()
	if existing, ok := m[l.Var()]; ok {
		return existing == value
	}
	m[l.Var()] = value
	return true
}

// Value returns the binding of v and whether v is assigned at all.
func (m Model) Value(v Var) (value, ok bool) {
	value, ok = m[v]
	return value, ok
}

// Satisfies is true iff l's variable is assigned and the assignment
// makes l true. Unassigned variables never satisfy a literal.
func (m Model) Satisfies(l Lit) bool {
	value, ok := m[l.Var()]
	return ok && value != l.Negated()
}

// Falsifies is true iff l's variable is assigned and the assignment
// makes l false.
func (m Model) Falsifies(l Lit) bool {
	value, ok := m[l.Var()]
	return ok && value == l.Negated()
}

// Copy returns an independent copy of the model.
func (m Model) Copy() Model {
	c := make(Model, len(m))
	for v, val := range m {
		c[v] = val
	}
	return c
}

// Vars returns the assigned variables in ascending order.
func (m Model) Vars() []Var {
	vars := make([]Var, 0, len(m))
	for v := range m {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}

// String renders the model as space-separated literal tokens in
// ascending variable order, e.g "-0 1 3".
func (m Model) String() string {
	toks := make([]string, 0, len(m))
	for _, v := range m.Vars() {
		toks = append(toks, NewLit(v, !m[v]).String())
	}
	return strings.Join(toks, " ")
}
