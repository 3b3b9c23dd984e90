// Package cnf defines the data model for propositional formulas in
// conjunctive normal form: literals, clauses, formulas and models, plus
// the instance-text parser. Variable 0 has a distinct negated form,
// written "-0" in instance text.
package cnf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Var is a propositional variable. Variables are numbered from 0.
type Var int32

// Lit is a literal, encoded as 2*var for the positive form and 2*var+1
// for the negated one. Keeping the sign in its own bit preserves the
// distinction between the literals "0" and "-0", which a plain signed
// integer cannot make. The numeric order on Lit is the canonical literal
// order: variable first, then polarity.
type Lit int32

// NewLit returns the literal for v, negated if neg.
func NewLit(v Var, neg bool) Lit {
	if neg {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// LitFromInt converts a signed literal to a Lit: -3 means "not 3".
// The negated form of variable 0 cannot be expressed as an int; use
// ParseLit("-0") for it.
func LitFromInt(i int) Lit {
	if i < 0 {
		return NewLit(Var(-i), true)
	}
	return NewLit(Var(i), false)
}

// ParseLit parses a literal token: a run of digits, optionally prefixed
// with '-'. This is the only input form able to express "-0".
func ParseLit(tok string) (Lit, error) {
	s := strings.TrimSpace(tok)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return 0, errors.Errorf("empty literal token %q", tok)
	}
	v, err := strconv.ParseUint(s, 10, 30)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid literal token %q", tok)
	}
	return NewLit(Var(v), neg), nil
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Negated is true iff l is a negative literal.
func (l Lit) Negated() bool {
	return l&1 == 1
}

// Negation returns the literal for the same variable with the opposite
// polarity.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Int returns the signed form of l. It panics on the negation of
// variable 0, which has no signed form.
func (l Lit) Int() int {
	if l == 1 {
		panic("literal -0 has no signed int form")
	}
	if l.Negated() {
		return -int(l.Var())
	}
	return int(l.Var())
}

// String returns the token form of l. It round-trips with ParseLit,
// including for "-0".
func (l Lit) String() string {
	if l.Negated() {
		return "-" + strconv.Itoa(int(l.Var()))
	}
	return strconv.Itoa(int(l.Var()))
}
