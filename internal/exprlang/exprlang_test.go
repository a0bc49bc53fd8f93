package exprlang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-weber/lalr1/internal/lalr1/parse"
	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

func newParser() parse.Parsable {
	d := parse.New(Tables)
	reg := semantics.New()
	BindSemantics(reg)
	d.SetSemantics(reg)
	return d
}

func run(t *testing.T, line string) (int64, bool) {
	t.Helper()
	p := newParser()
	p.SetInput(Lex(line))
	ok := p.Parse()
	if !ok {
		return 0, false
	}
	sym, has := p.GetTopSymbol()
	assert.True(t, has, "accepted parse must leave a top symbol")
	return sym.Val, true
}

func TestAddition(t *testing.T) {
	val, ok := run(t, "123 + 987")
	assert.True(t, ok)
	assert.Equal(t, int64(1110), val)
}

func TestPrecedence(t *testing.T) {
	val, ok := run(t, "2 * 3 + 4")
	assert.True(t, ok)
	assert.Equal(t, int64(10), val)
}

func TestParentheses(t *testing.T) {
	val, ok := run(t, "(2 + 3) * 4")
	assert.True(t, ok)
	assert.Equal(t, int64(20), val)
}

func TestLeftAssociativity(t *testing.T) {
	val, ok := run(t, "5 - 2 - 1")
	assert.True(t, ok)
	assert.Equal(t, int64(2), val)
}

func TestDivision(t *testing.T) {
	val, ok := run(t, "8 / 2")
	assert.True(t, ok)
	assert.Equal(t, int64(4), val)
}

func TestModulo(t *testing.T) {
	val, ok := run(t, "7 % 3")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val)
}

func TestPowerRightAssociative(t *testing.T) {
	val, ok := run(t, "2 ^ 3 ^ 2")
	assert.True(t, ok)
	assert.Equal(t, int64(512), val)
}

func TestUnaryMinusBindsBelowPower(t *testing.T) {
	val, ok := run(t, "-2 ^ 2")
	assert.True(t, ok)
	assert.Equal(t, int64(-4), val)
}

func TestUnaryAfterBinaryOperator(t *testing.T) {
	val, ok := run(t, "3 - -2")
	assert.True(t, ok)
	assert.Equal(t, int64(5), val)
}

func TestFullPrecedenceChain(t *testing.T) {
	val, ok := run(t, "2 + 3 * 4 ^ 2")
	assert.True(t, ok)
	assert.Equal(t, int64(50), val)
}

func TestRealLiteral(t *testing.T) {
	val, ok := run(t, "3.5 + 1")
	assert.True(t, ok)
	assert.Equal(t, int64(4), val) // reals truncate into the int64 domain
}

func TestFunctionCallZeroArgs(t *testing.T) {
	val, ok := run(t, "rand()")
	assert.True(t, ok)
	assert.Equal(t, int64(0), val)
}

func TestFunctionCallOneArg(t *testing.T) {
	val, ok := run(t, "sqrt(16)")
	assert.True(t, ok)
	assert.Equal(t, int64(4), val)
}

func TestFunctionCallTwoArgs(t *testing.T) {
	val, ok := run(t, "pow(2, 10)")
	assert.True(t, ok)
	assert.Equal(t, int64(1024), val)
}

func TestUnknownFunctionYieldsZero(t *testing.T) {
	val, ok := run(t, "nope(3)")
	assert.True(t, ok)
	assert.Equal(t, int64(0), val)
}

func TestStringTokenFailsGracefully(t *testing.T) {
	// No rule consumes a string token; the parse must fail with the usual
	// diagnostic rather than crash on an unmapped id.
	_, ok := run(t, `"abc" + 1`)
	assert.False(t, ok)
}

func TestMissingOperandFails(t *testing.T) {
	_, ok := run(t, "1 +")
	assert.False(t, ok)
}

func TestUnknownIdentifierYieldsZero(t *testing.T) {
	val, ok := run(t, "nope")
	assert.True(t, ok)
	assert.Equal(t, int64(0), val)
}

func TestKnownIdentifierResolves(t *testing.T) {
	val, ok := run(t, "pi")
	assert.True(t, ok)
	assert.Equal(t, int64(3), val) // int64 domain truncates math.Pi
}

func TestResetIdempotence(t *testing.T) {
	p := newParser()
	tokens := Lex("2 * 3 + 4")

	p.SetInput(tokens)
	first := p.Parse()
	firstVal, _ := p.GetTopSymbol()

	p.Reset()
	p.SetInput(tokens)
	second := p.Parse()
	secondVal, _ := p.GetTopSymbol()

	assert.Equal(t, first, second)
	assert.Equal(t, firstVal, secondVal)
}

func TestPartialsDoNotChangeFinalValue(t *testing.T) {
	tokens := Lex("2 * 3 + 4")

	without := parse.New(Tables)
	regA := semantics.New()
	BindSemantics(regA)
	without.SetSemantics(regA)
	without.SetInput(tokens)
	okA := without.Parse()
	valA, _ := without.GetTopSymbol()

	with := parse.New(Tables)
	regB := semantics.New()
	BindSemantics(regB)
	with.SetSemantics(regB)
	with.SetPartials(true)
	with.SetInput(tokens)
	okB := with.Parse()
	valB, _ := with.GetTopSymbol()

	assert.Equal(t, okA, okB)
	assert.Equal(t, valA.Val, valB.Val)
}

// semEvent records one semantic-callback invocation for order assertions.
type semEvent struct {
	sem      types.SemanticID
	argCount int
	finished bool
}

func TestPartialCallbacksFireWhileMatching(t *testing.T) {
	var events []semEvent
	reg := semantics.New()
	record := func(id types.SemanticID, final func(semantics.Args) types.Value) {
		reg.Bind(id, func(args semantics.Args, finished bool, retval types.Value) types.Value {
			events = append(events, semEvent{id, len(args), finished})
			if !finished {
				return retval
			}
			return final(args)
		})
	}
	record(SemStartID, func(a semantics.Args) types.Value { return a[0].Val })
	record(SemPassID, func(a semantics.Args) types.Value { return a[0].Val })
	record(SemIntID, func(a semantics.Args) types.Value { return a[0].Val })
	record(SemAddID, func(a semantics.Args) types.Value { return a[0].Val + a[2].Val })

	d := parse.New(Tables)
	d.SetSemantics(reg)
	d.SetPartials(true)
	d.SetInput(Lex("1 + 2"))

	ok := d.Parse()
	assert.True(t, ok)
	top, _ := d.GetTopSymbol()
	assert.Equal(t, int64(3), top.Val)
	assert.Equal(t, NontermStart, top.ID)

	// The addition rule is seen three times before it reduces: once with
	// its left operand alone, once more with the incoming '+', and once
	// with the incoming right operand. The finished call closes it out.
	// The start rule is seen once when the first full expression appears
	// and once more on its own reduction; the stratification (pass) and
	// literal rules only ever get their finished call.
	want := []semEvent{
		{SemIntID, 1, true},
		{SemPassID, 1, true}, // ATOM up to POW
		{SemPassID, 1, true}, // POW up to UNARY
		{SemPassID, 1, true}, // UNARY up to TERM
		{SemPassID, 1, true}, // TERM up to EXPR
		{SemStartID, 1, false},
		{SemAddID, 1, false},
		{SemAddID, 2, false},
		{SemAddID, 3, false},
		{SemIntID, 1, true},
		{SemPassID, 1, true},
		{SemPassID, 1, true},
		{SemPassID, 1, true},
		{SemAddID, 3, true},
		{SemStartID, 1, true},
	}
	assert.Equal(t, want, events)
}

func TestEndTokenHasNoLexeme(t *testing.T) {
	tokens := Lex("1")
	end := tokens[len(tokens)-1]
	assert.Equal(t, TokEndID, end.ID)
	_, has := end.Lexeme()
	assert.False(t, has)
}

func TestLexOperatorIDsAreCharCodes(t *testing.T) {
	syms := Lex("1+2")
	assert.Equal(t, types.SymbolID('+'), syms[1].ID)
}
