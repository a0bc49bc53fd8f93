package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// miniTables matches the grammar S -> A, A -> 'x', the smallest table set
// that exercises one shift, one reduction, and acceptance.
func miniTables() *Tables {
	return &Tables{
		Start: 0,
		End:   0,
		Shift: [][]int{
			{ERR, 1},
			{ERR, ERR},
			{ERR, ERR},
		},
		Reduce: [][]int{
			{ERR, ERR},
			{0, ERR},
			{ACC, ERR},
		},
		Jump: [][]int{
			{2},
			{ERR},
			{ERR},
		},
		NumRHSSyms: []int{1},
		LHSIdx:     []int{0},
		TermIdx: []Entry{
			{ID: 0, Index: 0, Label: "END"},
			{ID: 120, Index: 1, Label: "x"},
		},
		NontermIdx: []Entry{
			{ID: 100, Index: 0, Label: "A"},
		},
		SemanticIdx: []Entry{
			{ID: 1, Index: 0},
		},
	}
}

func TestIndexLookups(t *testing.T) {
	assert := assert.New(t)
	tbl := miniTables()

	idx, ok := tbl.TermIndex(120)
	assert.True(ok)
	assert.Equal(1, idx)
	_, ok = tbl.TermIndex(999)
	assert.False(ok)

	id, ok := tbl.NontermID(0)
	assert.True(ok)
	assert.Equal(100, id)

	idx, ok = tbl.NontermIndex(100)
	assert.True(ok)
	assert.Equal(0, idx)

	sem, ok := tbl.SemanticIDFor(0)
	assert.True(ok)
	assert.Equal(1, sem)
	_, ok = tbl.SemanticIDFor(1)
	assert.False(ok)
}

func TestPartialLookupsTreatNilTablesAsAbsent(t *testing.T) {
	tbl := miniTables()

	_, _, ok := tbl.PartialRuleForTerm(0, 1)
	assert.False(t, ok)
	_, _, ok = tbl.PartialRuleForNonterm(0, 0)
	assert.False(t, ok)
}

func TestPartialLookupsReturnRuleAndMatchLength(t *testing.T) {
	tbl := miniTables()
	tbl.PartialsRuleTerm = [][]int{{ERR, 7}}
	tbl.PartialsMatchLenTerm = [][]int{{ERR, 2}}
	tbl.PartialsRuleNonterm = [][]int{{5}}
	tbl.PartialsMatchLenNonterm = [][]int{{3}}

	sem, matchLen, ok := tbl.PartialRuleForTerm(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 7, sem)
	assert.Equal(t, 2, matchLen)

	// Row 1 is past the table's end; absence, not a panic.
	_, _, ok = tbl.PartialRuleForTerm(1, 1)
	assert.False(t, ok)

	sem, matchLen, ok = tbl.PartialRuleForNonterm(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 5, sem)
	assert.Equal(t, 3, matchLen)
}

func TestDumpRendersActionsAndJumps(t *testing.T) {
	out := miniTables().Dump()

	assert.Contains(t, out, "A:END")
	assert.Contains(t, out, "A:X") // the table renderer upper-cases header cells
	assert.Contains(t, out, "G:A")
	assert.Contains(t, out, "s1")
	assert.Contains(t, out, "r100(1 syms)")
	assert.Contains(t, out, "acc")
}
