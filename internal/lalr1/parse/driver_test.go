package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/tables"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// Minimal grammar for driver-level tests: S -> A, A -> 'x' (char code 120),
// with END as terminal id 0 and A as nonterminal id 100.
const (
	testTermX  = 120
	testNontA  = 100
	testSemA   = 1
	colTestEnd = 0
	colTestX   = 1
)

func miniTables() *tables.Tables {
	return &tables.Tables{
		Start: 0,
		End:   0,
		Shift: [][]int{
			{tables.ERR, 1},
			{tables.ERR, tables.ERR},
			{tables.ERR, tables.ERR},
		},
		Reduce: [][]int{
			{tables.ERR, tables.ERR},
			{0, tables.ERR},
			{tables.ACC, tables.ERR},
		},
		Jump: [][]int{
			{2},
			{tables.ERR},
			{tables.ERR},
		},
		NumRHSSyms: []int{1},
		LHSIdx:     []int{0},
		TermIdx: []tables.Entry{
			{ID: 0, Index: colTestEnd, Label: "END"},
			{ID: testTermX, Index: colTestX, Label: "x"},
		},
		NontermIdx: []tables.Entry{
			{ID: testNontA, Index: 0, Label: "A"},
		},
		SemanticIdx: []tables.Entry{
			{ID: testSemA, Index: 0},
		},
	}
}

func TestDriverAcceptsSimpleInput(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()
	called := false
	reg.BindFunc(testSemA, func(args semantics.Args) types.Value {
		called = true
		assert.Len(t, args, 1)
		return 42
	})
	d.SetSemantics(reg)
	d.SetInput([]types.Symbol{
		{IsTerm: true, ID: testTermX},
		{IsTerm: true, ID: 0},
	})

	ok := d.Parse()

	assert.True(t, ok)
	assert.True(t, called)
	top, has := d.GetTopSymbol()
	assert.True(t, has)
	assert.Equal(t, types.Value(42), top.Val)
	assert.False(t, top.IsTerm)
	assert.Equal(t, types.SymbolID(testNontA), top.ID)
	assert.Equal(t, len(d.symbolStack)+1, len(d.stateStack), "stacks must stay aligned")
}

func TestDriverFailsOnMissingEndToken(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()
	reg.BindFunc(testSemA, func(args semantics.Args) types.Value { return 1 })
	d.SetSemantics(reg)
	// No END terminator: the driver runs out of lookahead after shifting.
	d.SetInput([]types.Symbol{{IsTerm: true, ID: testTermX}})

	assert.False(t, d.Parse())
}

func TestDriverFailsOnEmptyInput(t *testing.T) {
	d := New(miniTables())
	d.SetSemantics(semantics.New())
	d.SetInput(nil)

	assert.False(t, d.Parse())
}

func TestDriverReportsNoActionError(t *testing.T) {
	d := New(miniTables())
	d.SetSemantics(semantics.New())
	// A bare END with no prior 'x' has no shift or reduce action in state 0.
	d.SetInput([]types.Symbol{{IsTerm: true, ID: 0}})

	ok := d.Parse()

	assert.False(t, ok)
}

func TestDriverReportsShiftReduceConflict(t *testing.T) {
	tbl := miniTables()
	tbl.Reduce[0][colTestX] = 0 // force both shift and reduce defined at (0, x)

	d := New(tbl)
	d.SetSemantics(semantics.New())
	d.SetInput([]types.Symbol{
		{IsTerm: true, ID: testTermX},
		{IsTerm: true, ID: 0},
	})

	ok := d.Parse()

	assert.False(t, ok)
}

func TestDriverMissingSemanticBindingFailsOnlyUnderPartials(t *testing.T) {
	d := New(miniTables())
	d.SetSemantics(semantics.New()) // no binding for testSemA
	d.SetInput([]types.Symbol{
		{IsTerm: true, ID: testTermX},
		{IsTerm: true, ID: 0},
	})

	ok := d.Parse()

	assert.True(t, ok, "a missing binding on a final reduction defaults retval to zero")
	top, _ := d.GetTopSymbol()
	assert.Equal(t, types.Value(0), top.Val)
}

func TestDriverResetIdempotence(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()
	reg.BindFunc(testSemA, func(args semantics.Args) types.Value { return 7 })
	d.SetSemantics(reg)

	input := []types.Symbol{
		{IsTerm: true, ID: testTermX},
		{IsTerm: true, ID: 0},
	}

	d.SetInput(input)
	first := d.Parse()
	firstTop, _ := d.GetTopSymbol()

	d.Reset()
	d.SetInput(input)
	second := d.Parse()
	secondTop, _ := d.GetTopSymbol()

	assert.Equal(t, first, second)
	assert.Equal(t, firstTop, secondTop)
}

func TestApplyPartialRuleDoubleCallsBeforeShift(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()

	var calls []bool // records the `finished` flag is always false, and how many calls happened
	reg.Bind(testSemA, func(args semantics.Args, finished bool, retval types.Value) types.Value {
		calls = append(calls, finished)
		return retval + 1
	})
	d.SetSemantics(reg)
	d.SetPartials(true)
	d.symbolStack = []types.Symbol{{IsTerm: true, ID: testTermX, StrVal: nil}}
	d.lookahead = types.Symbol{IsTerm: true, ID: 0}

	ok := d.applyPartialRule(testSemA, 1, true)

	assert.True(t, ok)
	// Fresh occurrence: seenTokensOld starts at 0 < ruleLen-1 (=1), so the
	// pre-shift call fires, then the with-shift call fires unconditionally.
	assert.Len(t, calls, 2)
	stack := d.activeRules[testSemA]
	assert.Len(t, stack, 1)
	assert.Equal(t, types.Value(2), stack[0].RetVal)
	assert.Equal(t, int64(0), stack[0].Handle)
}

func TestApplyPartialRuleSkipsRepeatedNontermState(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()
	calls := 0
	reg.Bind(testSemA, func(args semantics.Args, finished bool, retval types.Value) types.Value {
		calls++
		return retval
	})
	d.SetSemantics(reg)
	d.SetPartials(true)
	d.symbolStack = []types.Symbol{{IsTerm: true, ID: testTermX}}

	ok := d.applyPartialRule(testSemA, 1, false)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)

	// Same match length, not before a shift: the engine has already
	// recorded this exact state and must skip the second invocation.
	ok = d.applyPartialRule(testSemA, 1, false)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestApplyPartialRuleFailsWithoutBinding(t *testing.T) {
	d := New(miniTables())
	d.SetSemantics(semantics.New())
	d.SetPartials(true)
	d.symbolStack = []types.Symbol{{IsTerm: true, ID: testTermX}}

	ok := d.applyPartialRule(testSemA, 1, false)

	assert.False(t, ok)
}

func TestActiveRuleHandlesAreMonotonic(t *testing.T) {
	d := New(miniTables())
	reg := semantics.New()
	reg.Bind(testSemA, func(args semantics.Args, finished bool, retval types.Value) types.Value {
		return retval
	})
	d.SetSemantics(reg)
	d.SetPartials(true)
	d.symbolStack = []types.Symbol{{IsTerm: true, ID: testTermX}}

	// First occurrence, already progressed to ruleLen=2 (simulated), then a
	// second before_shift call with argLen=1 (ruleLen=2) must push a fresh occurrence
	// with a new, larger handle instead of reusing the first.
	d.activeRules[testSemA] = []types.ActiveRule{{SeenTokens: 2, Handle: d.allocHandle()}}
	d.lookahead = types.Symbol{IsTerm: true, ID: 0}

	ok := d.applyPartialRule(testSemA, 1, true) // ruleLen becomes 2, not < 2, so pushes fresh
	assert.True(t, ok)

	stack := d.activeRules[testSemA]
	assert.Len(t, stack, 2)
	assert.Less(t, stack[0].Handle, stack[1].Handle)
}
