// Package tables defines the read-only, process-wide data a parser consumes:
// the precomputed LALR(1) action/goto arrays, the id/index maps, and the
// partial-rule lookup arrays. Constructing these tables from a grammar's
// item sets is out of scope for this module; a Tables value is always a
// given, already-computed artifact.
package tables

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Sentinels used throughout the SHIFT/REDUCE/JUMP arrays.
const (
	// ERR marks the absence of an action or transition.
	ERR = -1

	// ACC marks the accepting action in REDUCE.
	ACC = -2
)

// Entry associates an external id with a table-local index and, for
// diagnostics, a human-readable label.
type Entry struct {
	ID    int
	Index int
	Label string
}

// Tables is the complete set of precomputed LALR(1) tables plus the
// optional partial-rule tables. All fields are read-only once
// constructed; a *Tables is safe to share across parser instances.
type Tables struct {
	// Start is the initial state index.
	Start int

	// End is the terminal id of the END sentinel.
	End int

	// Shift[state][termIdx] is the state to transition to on a shift, or
	// ERR.
	Shift [][]int

	// Reduce[state][termIdx] is the rule index to reduce by, ACC, or ERR.
	Reduce [][]int

	// Jump[state][nontermIdx] is the state to transition to after a
	// reduction to that nonterminal, or ERR.
	Jump [][]int

	// NumRHSSyms[rule] is the arity of rule's right-hand side.
	NumRHSSyms []int

	// LHSIdx[rule] is the nonterminal index of rule's left-hand side.
	LHSIdx []int

	// TermIdx, NontermIdx map terminal/nonterminal ids to table indices (and
	// back), carrying a label for diagnostics.
	TermIdx    []Entry
	NontermIdx []Entry

	// SemanticIdx maps a rule index (Entry.Index) to the semantic id bound
	// to that rule's action (Entry.ID).
	SemanticIdx []Entry

	// Partial-rule tables. An entry of ERR means "this
	// state/symbol carries no partial-rule invocation". Nil slices (rather
	// than all-ERR rows) are equivalent to "partials unsupported by this
	// table set" and are treated as all-ERR by the driver and generator.
	PartialsRuleTerm        [][]int
	PartialsMatchLenTerm    [][]int
	PartialsRuleNonterm     [][]int
	PartialsMatchLenNonterm [][]int

	// PartialsLHSNonterm[state][nontermIdx] gives the index to use when
	// consulting PartialsRuleNonterm for a completed nonterminal; absent
	// tables are treated as the identity mapping.
	PartialsLHSNonterm [][]int
}

// TermIndex returns the table index of terminal id, or false if unknown.
func (t *Tables) TermIndex(id int) (int, bool) {
	for _, e := range t.TermIdx {
		if e.ID == id {
			return e.Index, true
		}
	}
	return 0, false
}

// NontermID returns the nonterminal id at table index idx, or false if
// unknown.
func (t *Tables) NontermID(idx int) (int, bool) {
	for _, e := range t.NontermIdx {
		if e.Index == idx {
			return e.ID, true
		}
	}
	return 0, false
}

// NontermIndex returns the table index of nonterminal id, or false if
// unknown.
func (t *Tables) NontermIndex(id int) (int, bool) {
	for _, e := range t.NontermIdx {
		if e.ID == id {
			return e.Index, true
		}
	}
	return 0, false
}

// SemanticIDFor returns the semantic id bound to rule ruleIdx, or false if
// unknown.
func (t *Tables) SemanticIDFor(ruleIdx int) (int, bool) {
	for _, e := range t.SemanticIdx {
		if e.Index == ruleIdx {
			return e.ID, true
		}
	}
	return 0, false
}

// partialsLookup reads a possibly-nil [state][col] table, returning ERR for
// any row/column not present instead of panicking; the partial-rule tables
// are optional overlays on top of the required SHIFT/REDUCE/JUMP arrays.
func partialsLookup(tab [][]int, state, col int) int {
	if tab == nil || state >= len(tab) || tab[state] == nil || col >= len(tab[state]) {
		return ERR
	}
	return tab[state][col]
}

// PartialRuleForTerm returns the semantic id (and match length) of the
// partial rule, if any, keyed by shifting terminal termIdx out of state.
func (t *Tables) PartialRuleForTerm(state, termIdx int) (semID, matchLen int, ok bool) {
	sem := partialsLookup(t.PartialsRuleTerm, state, termIdx)
	if sem == ERR {
		return 0, 0, false
	}
	return sem, partialsLookup(t.PartialsMatchLenTerm, state, termIdx), true
}

// PartialRuleForNonterm returns the semantic id (and match length) of the
// partial rule, if any, keyed by the just-completed nonterminal at table
// index nontermIdx while in state.
func (t *Tables) PartialRuleForNonterm(state, nontermIdx int) (semID, matchLen int, ok bool) {
	lhsIdx := partialsLookup(t.PartialsLHSNonterm, state, nontermIdx)
	if lhsIdx == ERR {
		lhsIdx = nontermIdx
	}
	sem := partialsLookup(t.PartialsRuleNonterm, state, lhsIdx)
	if sem == ERR {
		return 0, 0, false
	}
	return sem, partialsLookup(t.PartialsMatchLenNonterm, state, lhsIdx), true
}

// Dump renders the SHIFT/REDUCE/JUMP arrays as an ASCII table, one row per
// state, for use by --debug and the "lalr1 tables" diagnostic command.
func (t *Tables) Dump() string {
	allTerms := make([]Entry, len(t.TermIdx))
	copy(allTerms, t.TermIdx)
	sortByIndex(allTerms)

	allNonterms := make([]Entry, len(t.NontermIdx))
	copy(allNonterms, t.NontermIdx)
	sortByIndex(allNonterms)

	headers := []string{"S", "|"}
	for _, term := range allTerms {
		headers = append(headers, fmt.Sprintf("A:%s", term.Label))
	}
	headers = append(headers, "|")
	for _, nt := range allNonterms {
		headers = append(headers, fmt.Sprintf("G:%s", nt.Label))
	}

	data := [][]string{headers}

	for state := range t.Shift {
		row := []string{fmt.Sprintf("%d", state), "|"}

		for _, term := range allTerms {
			cell := ""
			switch {
			case t.Reduce[state][term.Index] == ACC:
				cell = "acc"
			case t.Reduce[state][term.Index] != ERR:
				r := t.Reduce[state][term.Index]
				lhsID, _ := t.NontermID(t.LHSIdx[r])
				cell = fmt.Sprintf("r%d(%d syms)", lhsID, t.NumRHSSyms[r])
			case t.Shift[state][term.Index] != ERR:
				cell = fmt.Sprintf("s%d", t.Shift[state][term.Index])
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range allNonterms {
			cell := ""
			if j := t.Jump[state][nt.Index]; j != ERR {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func sortByIndex(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Index < entries[j-1].Index; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
