package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpll-sat/dpll/cnf"
)

func lit(i int) cnf.Lit { return cnf.LitFromInt(i) }

func TestApplyLiteral(t *testing.T) {
	f := cnf.NewFormula([][]int{{1, 2}, {-1, 3}, {4}})
	out, ok := applyLiteral(f, lit(1))
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "3", out[0].String())
	assert.Equal(t, "4", out[1].String())
	// Untouched clauses are shared, not copied.
	assert.Same(t, f[2], out[1])
	// The input formula is intact.
	assert.Len(t, f, 3)
	assert.Equal(t, 2, f[0].Len())
}

func TestApplyLiteralConflict(t *testing.T) {
	f := cnf.NewFormula([][]int{{-1}})
	_, ok := applyLiteral(f, lit(1))
	assert.False(t, ok, "emptying a clause is a conflict")
}

func TestPropagateUnits(t *testing.T) {
	s := New(nil)
	model := make(cnf.Model)
	f := cnf.NewFormula([][]int{{1}, {-1, 2}, {-2, 3, 4}})
	out, ok := s.propagateUnits(f, model)
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, "3 4", out[0].String())
	assert.Equal(t, cnf.Model{1: true, 2: true}, model)
	assert.Equal(t, 2, s.Stats.NbUnitProps)
}

func TestPropagateUnitsConflict(t *testing.T) {
	s := New(nil)
	model := make(cnf.Model)
	f := cnf.NewFormula([][]int{{1}, {-1}})
	_, ok := s.propagateUnits(f, model)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Stats.NbConflicts)
}

func TestPureLiterals(t *testing.T) {
	f := cnf.NewFormula([][]int{{1, -2}, {1, 3}, {2, 3}})
	// 1 and 3 are pure positive; 2 occurs with both polarities.
	pures := pureLiterals(f, cnf.Model{})
	assert.Equal(t, []cnf.Lit{lit(1), lit(3)}, pures)

	// Assigned variables are skipped.
	pures = pureLiterals(f, cnf.Model{1: true, 3: false})
	assert.Empty(t, pures)
}

func TestEliminatePures(t *testing.T) {
	s := New(nil)
	model := make(cnf.Model)
	f := cnf.NewFormula([][]int{{1, 2}, {1, -3}})
	out, ok := s.eliminatePures(f, model)
	require.True(t, ok)
	assert.Empty(t, out)
	value, assigned := model.Value(1)
	require.True(t, assigned)
	assert.True(t, value)
}

func TestSimplifyInterleaves(t *testing.T) {
	// The unit {1} reduces {-1, 2} to the unit {2}, which in turn makes
	// 3 pure in the surviving clause.
	s := New(nil)
	model := make(cnf.Model)
	f := cnf.NewFormula([][]int{{1}, {-1, 2}, {-2, 3, 4}})
	out, ok := s.simplify(f, model)
	require.True(t, ok)
	assert.Empty(t, out)
	assert.Equal(t, cnf.Model{1: true, 2: true, 3: true, 4: true}, model)
}

func TestChooseBranchLit(t *testing.T) {
	f := cnf.NewFormula([][]int{{1, 2, 3}, {4, 5}})
	assert.Equal(t, lit(4), chooseBranchLit(f, cnf.Model{}))
	// With var 4 assigned, the smallest unassigned literal of the same
	// clause is chosen.
	assert.Equal(t, lit(5), chooseBranchLit(f, cnf.Model{4: true}))
	// With the second clause fully assigned, the first clause is the
	// only candidate left.
	assert.Equal(t, lit(1), chooseBranchLit(f, cnf.Model{4: true, 5: true}))
}

func TestChooseBranchLitTieBreak(t *testing.T) {
	// Equal-sized clauses: the first one in formula order wins.
	f := cnf.NewFormula([][]int{{3, 4}, {1, 2}})
	assert.Equal(t, lit(3), chooseBranchLit(f, cnf.Model{}))
}
