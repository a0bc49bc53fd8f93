// Package parse implements the table-driven LALR(1) driver and the
// partial-rule engine that can invoke semantic callbacks before a rule
// fully reduces. It is the interpreter half of the runtime;
// package generate compiles the same tables into a recursive-ascent parser
// that implements the same Parsable contract.
package parse

import (
	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// Parsable is the external surface a parser exposes, whether it is the
// table-driven Driver or a generated recursive-ascent parser.
type Parsable interface {
	// SetSemantics installs the callbacks to invoke on reduction. May be
	// called only before Parse or after Reset.
	SetSemantics(reg *semantics.Registry)

	// SetInput installs the token sequence to parse. Its last element's ID
	// must equal GetEndID.
	SetInput(input []types.Symbol)

	// SetDebug toggles step-by-step trace printing.
	SetDebug(on bool)

	// SetPartials toggles the partial-rule engine.
	SetPartials(on bool)

	// GetEndID returns the END sentinel id baked into the tables.
	GetEndID() types.SymbolID

	// Reset returns the parser to its post-construction state without
	// re-reading tables.
	Reset()

	// Parse consumes the installed input and reports whether it derives
	// the grammar's start symbol.
	Parse() bool

	// GetTopSymbol inspects the top of the symbol stack.
	GetTopSymbol() (types.Symbol, bool)
}
