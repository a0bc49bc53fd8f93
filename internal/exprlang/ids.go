// Package exprlang is the tiny arithmetic-expression front end used to
// exercise the lalr1 runtime end-to-end: token/nonterminal identifiers, a
// longest-match lexer, a concrete set of LALR(1) tables, and the semantic
// callbacks bound to each rule.
//
// The grammar is a stratified rendition of the full operator set, with
// left-associative '+'/'-' under left-associative '*'/'/'/'%', prefix
// signs under those, and a right-associative '^' binding tightest, plus
// parenthesized sub-expressions, literals, identifiers, and function
// calls of zero, one, or two arguments:
//
//	START -> EXPR
//	EXPR  -> EXPR '+' TERM | EXPR '-' TERM | TERM
//	TERM  -> TERM '*' UNARY | TERM '/' UNARY | TERM '%' UNARY | UNARY
//	UNARY -> '+' UNARY | '-' UNARY | POW
//	POW   -> ATOM '^' UNARY | ATOM
//	ATOM  -> '(' EXPR ')' | REAL | INT | IDENT
//	       | IDENT '(' ')' | IDENT '(' EXPR ')' | IDENT '(' EXPR ',' EXPR ')'
//
// Constructing this grammar's item sets is out of scope for the runtime
// (tables are always a given artifact); the tables below were derived by
// hand from the grammar above and are exercised by the package tests.
package exprlang

import "github.com/t-weber/lalr1/internal/lalr1/types"

// Semantic rule ids for the expression grammar's action table. Every id
// is bound in semantics.go and reachable through the tables in tables.go.
const (
	SemStartID    types.SemanticID = 100
	SemBracketsID types.SemanticID = 101

	SemAddID  types.SemanticID = 200
	SemSubID  types.SemanticID = 201
	SemMulID  types.SemanticID = 202
	SemDivID  types.SemanticID = 203
	SemModID  types.SemanticID = 204
	SemPowID  types.SemanticID = 205
	SemUaddID types.SemanticID = 210
	SemUsubID types.SemanticID = 211

	SemCall0ID types.SemanticID = 300
	SemCall1ID types.SemanticID = 301
	SemCall2ID types.SemanticID = 302

	SemRealID  types.SemanticID = 400
	SemIntID   types.SemanticID = 401
	SemIdentID types.SemanticID = 410

	// SemPassID is the identity action bound to the stratification rules
	// (EXPR->TERM, TERM->UNARY, UNARY->POW, POW->ATOM) that exist only to
	// encode precedence.
	SemPassID types.SemanticID = 900
)

// Token ids.
const (
	TokRealID  types.SymbolID = 1000
	TokIntID   types.SymbolID = 1001
	TokStrID   types.SymbolID = 1002
	TokIdentID types.SymbolID = 1003

	// TokEndID is the END sentinel; callers should read it back through a
	// parser's GetEndID rather than hard-coding it.
	TokEndID types.SymbolID = 2000
)

// Single-character operator token ids, the character code of the operator
// itself.
const (
	TokPlusID   types.SymbolID = '+'
	TokMinusID  types.SymbolID = '-'
	TokStarID   types.SymbolID = '*'
	TokSlashID  types.SymbolID = '/'
	TokPercID   types.SymbolID = '%'
	TokCaretID  types.SymbolID = '^'
	TokLParenID types.SymbolID = '('
	TokRParenID types.SymbolID = ')'
	TokCommaID  types.SymbolID = ','
)

// Nonterminal ids. NontermStart is what an accepted parse leaves on top of
// the symbol stack.
const (
	NontermStart types.SymbolID = 10
	NontermExpr  types.SymbolID = 20
	NontermTerm  types.SymbolID = 21
	NontermAtom  types.SymbolID = 22
	NontermUnary types.SymbolID = 23
	NontermPow   types.SymbolID = 24
)
