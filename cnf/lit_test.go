package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLit(t *testing.T) {
	tests := []struct {
		tok string
		v   Var
		neg bool
	}{
		{"0", 0, false},
		{"-0", 0, true},
		{"3", 3, false},
		{"-42", 42, true},
		{" 7 ", 7, false},
	}
	for _, test := range tests {
		l, err := ParseLit(test.tok)
		require.NoError(t, err, "token %q", test.tok)
		assert.Equal(t, test.v, l.Var(), "token %q", test.tok)
		assert.Equal(t, test.neg, l.Negated(), "token %q", test.tok)
	}
}

func TestParseLitErrors(t *testing.T) {
	for _, tok := range []string{"", " ", "-", "--1", "a", "-a", "1a", "+1", "1.5"} {
		_, err := ParseLit(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestLitRoundTrip(t *testing.T) {
	for _, tok := range []string{"0", "-0", "1", "-1", "17", "-23"} {
		l, err := ParseLit(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, l.String())
	}
}

func TestNegativeZeroDistinct(t *testing.T) {
	pos, err := ParseLit("0")
	require.NoError(t, err)
	neg, err := ParseLit("-0")
	require.NoError(t, err)
	assert.NotEqual(t, pos, neg)
	assert.Equal(t, pos, neg.Negation())
	assert.Equal(t, neg, pos.Negation())
	assert.Equal(t, pos.Var(), neg.Var())
}

func TestLitFromInt(t *testing.T) {
	assert.Equal(t, NewLit(3, false), LitFromInt(3))
	assert.Equal(t, NewLit(3, true), LitFromInt(-3))
	assert.Equal(t, NewLit(0, false), LitFromInt(0))
	assert.Equal(t, 3, LitFromInt(3).Int())
	assert.Equal(t, -3, LitFromInt(-3).Int())
	assert.Panics(t, func() { NewLit(0, true).Int() })
}

func TestLitOrder(t *testing.T) {
	// Variable first, then polarity.
	ordered := []Lit{
		NewLit(0, false),
		NewLit(0, true),
		NewLit(1, false),
		NewLit(1, true),
		NewLit(2, false),
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}
