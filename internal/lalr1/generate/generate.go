// Package generate compiles a set of LALR(1) tables into a standalone,
// recursive-ascent Go source file: one function per parser state, calling
// directly into its successor states' functions instead of driving a
// table lookup at run time.
package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/t-weber/lalr1/internal/lalr1/tables"
)

// Options controls the shape of the emitted parser.
type Options struct {
	// PackageName is the package clause of the emitted file.
	PackageName string

	// Partials, when true, weaves active-rule declarations, reset hooks,
	// and per-case partial-rule calls into the emitted states. When
	// false, the partial-rule machinery is elided entirely.
	Partials bool
}

// code is the static scaffold the per-state functions are spliced into.
const code = `// Code generated by lalr1 generate. DO NOT EDIT.

package %%PACKAGE%%

import (
	"fmt"

	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// Parser is a recursive-ascent parser compiled from a fixed table set: each
// LALR(1) state is one method, calling directly into its successor states
// in place of an explicit state stack.
type Parser struct {
	symbolStack []types.Symbol

	distToJump int

	failed   bool
	accepted bool

	lookahead types.Symbol

	input          []types.Symbol
	nextInputIndex int

	semantics *semantics.Registry
%%PARTIALFIELDS%%
	debug bool
	end   types.SymbolID
}

// New returns a Parser ready for SetSemantics/SetInput/Parse.
func New() *Parser {
	p := &Parser{
		semantics: semantics.New(),
		end:       %%END%%,
	}
	p.Reset()
	return p
}

func (p *Parser) nextLookahead() bool {
	if p.nextInputIndex >= len(p.input) {
		fmt.Printf("Error: No lookahead available at input index %d.\n", p.nextInputIndex)
		p.failed = true
		return false
	}
	p.lookahead = p.input[p.nextInputIndex]
	if p.debug {
		fmt.Printf("Lookahead: %+v, input index: %d.\n", p.lookahead, p.nextInputIndex)
	}
	p.nextInputIndex++
	return true
}

func (p *Parser) pushLookahead() {
	p.symbolStack = append(p.symbolStack, p.lookahead)
	p.nextLookahead()
}

func (p *Parser) errorTerm(stateIdx int, symID types.SymbolID) {
	fmt.Printf("Error: Invalid terminal transition %d in state %d.\n", symID, stateIdx)
	p.failed = true
}

func (p *Parser) errorNonterm(stateIdx int, symID types.SymbolID) {
	fmt.Printf("Error: Invalid non-terminal transition %d in state %d.\n", symID, stateIdx)
	p.failed = true
}

func (p *Parser) applyRule(ruleID types.SemanticID, numRHS int, lhsID types.SymbolID) {
	if p.debug {
		fmt.Printf("Applying rule %d with %d arguments.\n", ruleID, numRHS)
	}

	p.distToJump = numRHS

	args := make(semantics.Args, numRHS)
	for i := numRHS - 1; i >= 0; i-- {
		args[i] = p.symbolStack[len(p.symbolStack)-1]
		p.symbolStack = p.symbolStack[:len(p.symbolStack)-1]
	}

	var retval types.Value
%%PARTIALDRAIN%%
	if fn, ok := p.semantics.Lookup(ruleID); ok {
		retval = fn(args, true, retval)
	}

	p.symbolStack = append(p.symbolStack, types.Symbol{
		IsTerm: false,
		ID:     lhsID,
		Val:    retval,
	})
}
%%PARTIALMETHODS%%
%%STATES%%
func (p *Parser) SetDebug(on bool) { p.debug = on }

func (p *Parser) SetPartials(on bool) {%%SETPARTIALSBODY%%}

func (p *Parser) GetEndID() types.SymbolID { return p.end }

func (p *Parser) SetInput(input []types.Symbol) { p.input = input }

func (p *Parser) SetSemantics(reg *semantics.Registry) { p.semantics = reg }

func (p *Parser) GetTopSymbol() (types.Symbol, bool) {
	if len(p.symbolStack) == 0 {
		return types.Symbol{}, false
	}
	return p.symbolStack[len(p.symbolStack)-1], true
}

func (p *Parser) Reset() {
	p.nextInputIndex = 0
	p.lookahead = types.Symbol{}
	p.symbolStack = nil
	p.distToJump = 0

	p.failed = false
	p.accepted = false%%PARTIALRESET%%
}

func (p *Parser) Parse() bool {
	p.Reset()
	if !p.nextLookahead() {
		return false
	}
	p.state%%START_IDX%%()

	return p.accepted
}
`

const partialFields = `
	activeRules   map[types.SemanticID][]types.ActiveRule
	curRuleHandle int64
`

const partialDrain = `	if stack, ok := p.activeRules[ruleID]; ok && len(stack) > 0 {
		top := stack[len(stack)-1]
		p.activeRules[ruleID] = stack[:len(stack)-1]
		retval = top.RetVal
	}
`

const partialReset = `

	p.activeRules = map[types.SemanticID][]types.ActiveRule{}
	p.curRuleHandle = 0`

const partialMethods = `
func (p *Parser) allocHandle() int64 {
	h := p.curRuleHandle
	p.curRuleHandle++
	return h
}

func (p *Parser) topSymbols(n int) semantics.Args {
	args := make(semantics.Args, n)
	copy(args, p.symbolStack[len(p.symbolStack)-n:])
	return args
}

// applyPartialRule mirrors the table-driven driver's partial-rule engine;
// it is duplicated here rather than shared because the recursive-ascent
// parser keeps no state stack to hang a shared implementation off of.
func (p *Parser) applyPartialRule(sem types.SemanticID, argLen int, beforeShift bool) {
	ruleLen := argLen
	if beforeShift {
		ruleLen++
	}

	stack := p.activeRules[sem]

	var topIdx int
	var seenTokensOld int
	skip := false

	if len(stack) > 0 {
		topIdx = len(stack) - 1
		seenTokensOld = stack[topIdx].SeenTokens

		if beforeShift {
			if stack[topIdx].SeenTokens < ruleLen {
				stack[topIdx].SeenTokens = ruleLen
			} else {
				stack = append(stack, types.ActiveRule{SeenTokens: ruleLen, Handle: p.allocHandle()})
				topIdx = len(stack) - 1
				seenTokensOld = 0
			}
		} else {
			if stack[topIdx].SeenTokens == ruleLen {
				skip = true
			} else {
				stack[topIdx].SeenTokens = ruleLen
			}
		}
	} else {
		stack = append(stack, types.ActiveRule{SeenTokens: ruleLen, Handle: p.allocHandle()})
		topIdx = 0
		seenTokensOld = 0
	}

	p.activeRules[sem] = stack

	if skip {
		return
	}

	fn, ok := p.semantics.Lookup(sem)
	if !ok {
		fmt.Printf("Error: Semantic rule %d is not defined.\n", sem)
		p.failed = true
		return
	}

	args := p.topSymbols(argLen)

	if !beforeShift || seenTokensOld < ruleLen-1 {
		cur := p.activeRules[sem][topIdx]
		cur.RetVal = fn(args, false, cur.RetVal)
		p.activeRules[sem][topIdx] = cur
	}

	if beforeShift {
		withLookahead := make(semantics.Args, 0, len(args)+1)
		withLookahead = append(withLookahead, args...)
		withLookahead = append(withLookahead, p.lookahead)

		cur := p.activeRules[sem][topIdx]
		cur.RetVal = fn(withLookahead, false, cur.RetVal)
		p.activeRules[sem][topIdx] = cur
	}
}
`

func hasTableEntry(row []int) bool {
	for _, v := range row {
		if v != tables.ERR {
			return true
		}
	}
	return false
}

func entryByIndex(entries []tables.Entry, idx int) (tables.Entry, bool) {
	for _, e := range entries {
		if e.Index == idx {
			return e, true
		}
	}
	return tables.Entry{}, false
}

func semanticIDFor(entries []tables.Entry, ruleIdx int) int {
	for _, e := range entries {
		if e.Index == ruleIdx {
			return e.ID
		}
	}
	return tables.ERR
}

// Generate compiles tbl into a complete Go source file and returns it.
func Generate(tbl *tables.Tables, opts Options) ([]byte, error) {
	pkg := opts.PackageName
	if pkg == "" {
		pkg = "generated"
	}

	states, err := createStates(tbl, opts.Partials)
	if err != nil {
		return nil, err
	}

	out := code
	out = strings.ReplaceAll(out, "%%PACKAGE%%", pkg)
	out = strings.ReplaceAll(out, "%%END%%", fmt.Sprintf("%d", tbl.End))
	out = strings.ReplaceAll(out, "%%START_IDX%%", fmt.Sprintf("%d", tbl.Start))
	out = strings.ReplaceAll(out, "%%STATES%%", states)

	if opts.Partials {
		out = strings.ReplaceAll(out, "%%PARTIALFIELDS%%", partialFields)
		out = strings.ReplaceAll(out, "%%PARTIALDRAIN%%", partialDrain)
		out = strings.ReplaceAll(out, "%%PARTIALRESET%%", partialReset)
		out = strings.ReplaceAll(out, "%%PARTIALMETHODS%%", partialMethods)
		out = strings.ReplaceAll(out, "%%SETPARTIALSBODY%%", "\n\t_ = on // always on in this build\n")
	} else {
		out = strings.ReplaceAll(out, "%%PARTIALFIELDS%%", "")
		out = strings.ReplaceAll(out, "%%PARTIALDRAIN%%", "")
		out = strings.ReplaceAll(out, "%%PARTIALRESET%%", "")
		out = strings.ReplaceAll(out, "%%PARTIALMETHODS%%", "")
		out = strings.ReplaceAll(out, "%%SETPARTIALSBODY%%", "\n\t_ = on // partials are compiled out of this build\n")
	}

	return []byte(out), nil
}

// createStates emits one method per parser state, following the reference
// generator's per-row classification: shift cases call their successor
// state directly, reduce cases are grouped by rule, ACC cases are grouped,
// and a default case reports an invalid transition.
func createStates(tbl *tables.Tables, partials bool) (string, error) {
	var b strings.Builder
	numStates := len(tbl.Shift)

	for s := 0; s < numStates; s++ {
		shiftRow := tbl.Shift[s]
		reduceRow := tbl.Reduce[s]
		jumpRow := tbl.Jump[s]

		hasShift := hasTableEntry(shiftRow)
		hasJump := hasTableEntry(jumpRow)

		fmt.Fprintf(&b, "func (p *Parser) state%d() {\n", s)

		if hasShift {
			b.WriteString("\tvar nextState func(*Parser)\n")
		}

		b.WriteString("\tsymID := p.lookahead.ID\n\n\tswitch symID {\n")

		type termCase struct {
			id    int
			label string
		}
		rulesByIdx := map[int][]termCase{}
		var accCases []termCase
		var shiftCases []struct {
			termCase
			target int
			termIx int
		}

		for t, newState := range shiftRow {
			entry, _ := entryByIndex(tbl.TermIdx, t)
			ruleIdx := reduceRow[t]

			switch {
			case newState != tables.ERR:
				shiftCases = append(shiftCases, struct {
					termCase
					target int
					termIx int
				}{termCase{entry.ID, entry.Label}, newState, t})
			case ruleIdx == tables.ACC:
				accCases = append(accCases, termCase{entry.ID, entry.Label})
			case ruleIdx != tables.ERR:
				rulesByIdx[ruleIdx] = append(rulesByIdx[ruleIdx], termCase{entry.ID, entry.Label})
			}
		}

		for _, sc := range shiftCases {
			if partials {
				if sem, matchLen, ok := tbl.PartialRuleForTerm(s, sc.termIx); ok {
					fmt.Fprintf(&b, "\tcase %d: // %s\n\t\tp.applyPartialRule(%d, %d, true)\n\t\tnextState = (*Parser).state%d\n",
						sc.id, sc.label, sem, matchLen, sc.target)
					continue
				}
			}
			fmt.Fprintf(&b, "\tcase %d: // %s\n\t\tnextState = (*Parser).state%d\n", sc.id, sc.label, sc.target)
		}

		ruleIdxs := make([]int, 0, len(rulesByIdx))
		for r := range rulesByIdx {
			ruleIdxs = append(ruleIdxs, r)
		}
		sort.Ints(ruleIdxs)

		for _, r := range ruleIdxs {
			cases := rulesByIdx[r]
			ids := make([]string, len(cases))
			labels := make([]string, len(cases))
			for i, c := range cases {
				ids[i] = fmt.Sprintf("%d", c.id)
				labels[i] = c.label
			}

			semID := semanticIDFor(tbl.SemanticIdx, r)
			numRHS := tbl.NumRHSSyms[r]
			lhsEntry, _ := entryByIndex(tbl.NontermIdx, tbl.LHSIdx[r])

			fmt.Fprintf(&b, "\tcase %s: // %s\n\t\tp.applyRule(%d, %d, %d)\n",
				strings.Join(ids, ", "), strings.Join(labels, " | "), semID, numRHS, lhsEntry.ID)
		}

		if len(accCases) > 0 {
			ids := make([]string, len(accCases))
			labels := make([]string, len(accCases))
			for i, c := range accCases {
				ids[i] = fmt.Sprintf("%d", c.id)
				labels[i] = c.label
			}
			fmt.Fprintf(&b, "\tcase %s: // %s\n\t\tp.accepted = true\n", strings.Join(ids, ", "), strings.Join(labels, " | "))
		}

		fmt.Fprintf(&b, "\tdefault:\n\t\tp.errorTerm(%d, symID)\n\t}\n\n", s)

		if hasShift {
			b.WriteString("\tif nextState != nil {\n\t\tp.pushLookahead()\n\t\tif !p.failed {\n\t\t\tnextState(p)\n\t\t}\n\t}\n\n")
		}

		if hasJump {
			fmt.Fprintf(&b, "\tfor p.distToJump == 0 && len(p.symbolStack) > 0 && !p.accepted && !p.failed {\n")
			b.WriteString("\t\ttopSym := p.symbolStack[len(p.symbolStack)-1]\n\t\tif topSym.IsTerm {\n\t\t\tbreak\n\t\t}\n\n\t\tswitch topSym.ID {\n")

			for n, target := range jumpRow {
				if target == tables.ERR {
					continue
				}
				entry, _ := entryByIndex(tbl.NontermIdx, n)

				if partials {
					if sem, matchLen, ok := tbl.PartialRuleForNonterm(s, n); ok {
						fmt.Fprintf(&b, "\t\tcase %d: // %s\n\t\t\tp.applyPartialRule(%d, %d, false)\n\t\t\tp.state%d()\n",
							entry.ID, entry.Label, sem, matchLen, target)
						continue
					}
				}
				fmt.Fprintf(&b, "\t\tcase %d: // %s\n\t\t\tp.state%d()\n", entry.ID, entry.Label, target)
			}

			fmt.Fprintf(&b, "\t\tdefault:\n\t\t\tp.errorNonterm(%d, topSym.ID)\n\t\t}\n\t}\n\n", s)
		}

		b.WriteString("\tif !p.accepted && !p.failed {\n\t\tp.distToJump--\n\t}\n")
		b.WriteString("}\n")
		if s < numStates-1 {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
