// Package types holds the value types carried on a parser's stacks: the
// uniform terminal/nonterminal Symbol record and the bookkeeping entry used
// by the partial-rule engine to track an in-progress rule occurrence.
package types

// SymbolID identifies a terminal or nonterminal, as assigned by the grammar
// this parser was built from.
type SymbolID int

// SemanticID identifies a semantic rule, i.e. the action bound to a
// particular grammar production.
type SemanticID int

// Index is a table-local index: a state, a row position within a state's
// terminal/nonterminal columns, or a rule number. It is distinct from an
// SymbolID/SemanticID, which are caller-chosen identifiers that tables map
// to and from indices.
type Index int

// Value is the semantic value domain threaded through Symbol.Val and
// returned by semantic actions. A grammar could plausibly want either a
// 64-bit integer or a 64-bit float here; this runtime fixes it to a signed
// 64-bit integer (see DESIGN.md).
type Value = int64

// Symbol is a uniform record used for both terminals pulled off the input
// and nonterminals produced by a reduction.
type Symbol struct {
	// IsTerm is true for a terminal read from input, false for a
	// nonterminal produced by a reduction.
	IsTerm bool

	// ID is the terminal's token id or the nonterminal's id.
	ID SymbolID

	// Val is the symbol's semantic value.
	Val Value

	// StrVal is the lexeme text, or nil when the symbol has none
	// (synthesized nonterminals never carry one; an END sentinel may or may
	// not).
	StrVal *string
}

// Lexeme returns the symbol's text and whether it has one.
func (s Symbol) Lexeme() (string, bool) {
	if s.StrVal == nil {
		return "", false
	}
	return *s.StrVal, true
}

// ActiveRule is the bookkeeping kept for one in-progress occurrence of a
// semantic rule while the partial-rule engine is invoking callbacks before
// the rule fully reduces.
type ActiveRule struct {
	// SeenTokens is the count of right-hand-side symbols matched so far,
	// including the lookahead when recorded just before a shift.
	SeenTokens int

	// Handle uniquely names this occurrence for the lifetime of one parse.
	// Surfaced only for diagnostics.
	Handle int64

	// RetVal is the accumulator threaded through successive partial
	// invocations for this occurrence.
	RetVal Value
}
