package exprlang

import (
	"strconv"
	"strings"

	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// operatorIDs maps the single-character operators the lexer recognizes to
// their token id, which is the character code itself.
var operatorIDs = map[rune]types.SymbolID{
	'+': TokPlusID,
	'-': TokMinusID,
	'*': TokStarID,
	'/': TokSlashID,
	'%': TokPercID,
	'^': TokCaretID,
	'(': TokLParenID,
	')': TokRParenID,
	',': TokCommaID,
}

func isIntLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isRealLiteral(s string) bool {
	hadPoint, hadExp := false, false
	expIdx := -1

	for idx, r := range s {
		switch {
		case r >= '0' && r <= '9':
			continue
		case r == '.' && !hadPoint && !hadExp:
			hadPoint = true
		case (r == 'e' || r == 'E') && !hadExp:
			hadExp = true
			expIdx = idx
		case (r == '+' || r == '-') && hadExp && idx == expIdx+1:
			continue
		default:
			return false
		}
	}

	return hadPoint || hadExp
}

func isIdentLiteral(s string) bool {
	for idx, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if idx == 0 && !isLetter {
			return false
		}
		if idx > 0 && !isLetter && !isDigit {
			return false
		}
	}
	return s != ""
}

func isStrLiteral(s string) bool {
	opened, closed := false, false

	for idx, r := range s {
		if closed {
			return false
		}
		if idx == 0 && r == '"' {
			opened = true
			continue
		}
		if r == '"' && opened {
			closed = true
		}
	}

	return closed
}

// match classifies a complete candidate substring, or reports that it
// matches nothing (token classes in longest-match preference order).
func match(s string) (types.Symbol, bool) {
	text := s

	switch {
	case isIntLiteral(s):
		v, _ := strconv.ParseInt(s, 10, 64)
		return types.Symbol{IsTerm: true, ID: TokIntID, Val: v, StrVal: &text}, true

	case isRealLiteral(s):
		f, _ := strconv.ParseFloat(s, 64)
		return types.Symbol{IsTerm: true, ID: TokRealID, Val: int64(f), StrVal: &text}, true

	case isIdentLiteral(s):
		return types.Symbol{IsTerm: true, ID: TokIdentID, StrVal: &text}, true

	case isStrLiteral(s):
		return types.Symbol{IsTerm: true, ID: TokStrID, StrVal: &text}, true

	case len(s) == 1:
		if id, ok := operatorIDs[rune(s[0])]; ok {
			return types.Symbol{IsTerm: true, ID: id, StrVal: &text}, true
		}
	}

	return types.Symbol{}, false
}

// longestMatch scans forward from the start of s, returning the symbol for
// the longest prefix that matches some token class and the byte offset
// just past it. Ties are resolved by the match function's class order
// (integers before reals before identifiers before strings before
// operators).
func longestMatch(s string) (types.Symbol, int, bool) {
	if len(s) == 0 {
		return types.Symbol{}, 0, false
	}

	var last types.Symbol
	found := false

	for end := 1; end <= len(s); end++ {
		sym, ok := match(s[:end])
		if ok {
			last = sym
			found = true
			continue
		}
		if found {
			return last, end - 1, true
		}
	}

	if found {
		return last, len(s), true
	}
	return types.Symbol{}, 0, false
}

// Lex scans line for tokens by repeated longest-match, skipping whitespace
// between them, and appends the END sentinel with no lexeme text (the
// non-partial behavior; see DESIGN.md on the END strval inconsistency).
func Lex(line string) []types.Symbol {
	var syms []types.Symbol

	rest := strings.TrimSpace(line)
	for rest != "" {
		sym, n, ok := longestMatch(rest)
		if !ok {
			break
		}
		syms = append(syms, sym)
		rest = strings.TrimSpace(rest[n:])
	}

	syms = append(syms, types.Symbol{IsTerm: true, ID: TokEndID})
	return syms
}
