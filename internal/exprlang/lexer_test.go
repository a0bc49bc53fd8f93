package exprlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexSplitsAdjacentTokens(t *testing.T) {
	syms := Lex("123+4")

	assert.Len(t, syms, 4) // three tokens plus END
	assert.Equal(t, TokIntID, syms[0].ID)
	assert.Equal(t, int64(123), syms[0].Val)
	assert.Equal(t, TokPlusID, syms[1].ID)
	assert.Equal(t, int64(4), syms[2].Val)
	assert.Equal(t, TokEndID, syms[3].ID)
}

func TestLexRealLiterals(t *testing.T) {
	cases := []struct {
		in  string
		val int64
	}{
		{"1.5", 1},
		{"2e3", 2000},
		{"1.25e2", 125},
	}

	for _, tc := range cases {
		syms := Lex(tc.in)
		assert.Equal(t, TokRealID, syms[0].ID, tc.in)
		assert.Equal(t, tc.val, syms[0].Val, tc.in)
	}
}

func TestLexPrefersLongestMatch(t *testing.T) {
	syms := Lex("x1 * 2")

	assert.Equal(t, TokIdentID, syms[0].ID)
	text, ok := syms[0].Lexeme()
	assert.True(t, ok)
	assert.Equal(t, "x1", text)
	assert.Equal(t, TokStarID, syms[1].ID)
}

func TestLexQuotedString(t *testing.T) {
	syms := Lex(`"abc" + 1`)

	assert.Equal(t, TokStrID, syms[0].ID)
	text, ok := syms[0].Lexeme()
	assert.True(t, ok)
	assert.Equal(t, `"abc"`, text)
	assert.Equal(t, TokPlusID, syms[1].ID)
	assert.Equal(t, TokIntID, syms[2].ID)
}

func TestLexSkipsWhitespace(t *testing.T) {
	syms := Lex("  1   +\t2  ")

	assert.Len(t, syms, 4)
	assert.Equal(t, int64(1), syms[0].Val)
	assert.Equal(t, int64(2), syms[2].Val)
}
