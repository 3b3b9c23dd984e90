package cnf

import (
	"sort"
	"strings"
)

// A Clause is a disjunction of literals. Literals are kept sorted and
// deduplicated, so iteration order is deterministic and the smallest
// literal is always first. An empty clause is a contradiction: no
// assignment satisfies it.
//
// Clauses are immutable once built; rewriting operations return new
// clauses.
type Clause struct {
	lits []Lit
}

// NewClause returns the clause containing the given literals, with
// duplicates collapsed.
func NewClause(lits []Lit) *Clause {
	sorted := append([]Lit(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || l != sorted[i-1] {
			out = append(out, l)
		}
	}
	return &Clause{lits: out}
}

// ParseClause builds a clause from literal tokens such as "2", "-0".
func ParseClause(tokens []string) (*Clause, error) {
	lits := make([]Lit, len(tokens))
	for i, tok := range tokens {
		l, err := ParseLit(tok)
		if err != nil {
			return nil, err
		}
		lits[i] = l
	}
	return NewClause(lits), nil
}

// Len returns the number of distinct literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal, in ascending literal order.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// First returns the smallest literal of the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Has is true iff the clause contains l.
func (c *Clause) Has(l Lit) bool {
	i := sort.Search(len(c.lits), func(i int) bool { return c.lits[i] >= l })
	return i < len(c.lits) && c.lits[i] == l
}

// Without returns a new clause with every literal of c except l.
func (c *Clause) Without(l Lit) *Clause {
	lits := make([]Lit, 0, len(c.lits)-1)
	for _, lit := range c.lits {
		if lit != l {
			lits = append(lits, lit)
		}
	}
	return &Clause{lits: lits}
}

// String returns the clause in instance syntax: space-separated literal
// tokens.
func (c *Clause) String() string {
	toks := make([]string, len(c.lits))
	for i, l := range c.lits {
		toks[i] = l.String()
	}
	return strings.Join(toks, " ")
}
