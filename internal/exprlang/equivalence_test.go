package exprlang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-weber/lalr1/internal/exprlang/generated"
	"github.com/t-weber/lalr1/internal/lalr1/parse"
	"github.com/t-weber/lalr1/internal/lalr1/semantics"
)

// The checked-in recursive-ascent parser has to keep satisfying the same
// contract as the table-driven driver.
var _ parse.Parsable = (*generated.Parser)(nil)

func TestGeneratedParserMatchesDriver(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"addition", "123 + 987"},
		{"precedence", "2 * 3 + 4"},
		{"parentheses", "(2 + 3) * 4"},
		{"left associativity", "5 - 2 - 1"},
		{"nested parentheses", "((1 + 2)) * (3 - 1)"},
		{"division and modulo", "7 % 4 * 3 / 2"},
		{"power right associativity", "2 ^ 3 ^ 2"},
		{"unary signs", "-2 ^ 2 + +3"},
		{"zero-arg call", "rand()"},
		{"calls", "pow(2, 10) - sqrt(16)"},
		{"missing operand", "1 +"},
		{"known identifier", "pi + 1"},
		{"string token", `"abc"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			driver := parse.New(Tables)
			regA := semantics.New()
			BindSemantics(regA)
			driver.SetSemantics(regA)
			driver.SetPartials(true)
			driver.SetInput(Lex(tc.input))

			gen := generated.New()
			regB := semantics.New()
			BindSemantics(regB)
			gen.SetSemantics(regB)
			gen.SetInput(Lex(tc.input))

			okA := driver.Parse()
			okB := gen.Parse()
			assert.Equal(okA, okB, "acceptance must match")

			if okA {
				topA, hasA := driver.GetTopSymbol()
				topB, hasB := gen.GetTopSymbol()
				assert.True(hasA)
				assert.True(hasB)
				assert.Equal(topA.Val, topB.Val)
				assert.Equal(topA.ID, topB.ID)
				assert.False(topB.IsTerm)
			}
		})
	}
}

func TestGeneratedParserEndID(t *testing.T) {
	assert.Equal(t, TokEndID, generated.New().GetEndID())
}

func TestGeneratedParserResetIdempotence(t *testing.T) {
	p := generated.New()
	reg := semantics.New()
	BindSemantics(reg)
	p.SetSemantics(reg)

	tokens := Lex("(2 + 3) * 4")
	p.SetInput(tokens)
	first := p.Parse()
	firstTop, _ := p.GetTopSymbol()

	p.Reset()
	p.SetInput(tokens)
	second := p.Parse()
	secondTop, _ := p.GetTopSymbol()

	assert.Equal(t, first, second)
	assert.Equal(t, firstTop, secondTop)
	assert.Equal(t, int64(20), secondTop.Val)
}
