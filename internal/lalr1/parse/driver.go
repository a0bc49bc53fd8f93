package parse

import (
	"fmt"

	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/tables"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// Driver is the table-driven LALR(1) interpreter. A Driver is reusable
// across parses via Reset but is not safe for concurrent use.
type Driver struct {
	tbl *tables.Tables

	// index maps, built once from tbl so the hot path never re-scans the
	// id/index entries.
	termIdx    map[int]int
	nontermID  map[int]int
	nontermIdx map[int]int
	semanticID map[int]int

	stateStack  []int
	symbolStack []types.Symbol

	lookahead      types.Symbol
	lookaheadIndex int

	input          []types.Symbol
	nextInputIndex int

	semantics *semantics.Registry

	activeRules   map[types.SemanticID][]types.ActiveRule
	curRuleHandle int64

	debug       bool
	usePartials bool

	// Trace, if set, is called with a one-line message for every notable
	// driver step when debug is enabled. It is purely a debugging aid and
	// is never used for the parser's diagnostic lines, which always go to
	// stdout via fmt.Println regardless of this hook.
	Trace func(string)
}

// New builds a Driver over tbl. tbl is assumed immutable for the lifetime
// of the Driver.
func New(tbl *tables.Tables) *Driver {
	d := &Driver{
		tbl:        tbl,
		termIdx:    map[int]int{},
		nontermID:  map[int]int{},
		nontermIdx: map[int]int{},
		semanticID: map[int]int{},
		semantics:  semantics.New(),
	}

	for _, e := range tbl.TermIdx {
		d.termIdx[e.ID] = e.Index
	}
	for _, e := range tbl.NontermIdx {
		d.nontermID[e.Index] = e.ID
		d.nontermIdx[e.ID] = e.Index
	}
	for _, e := range tbl.SemanticIdx {
		d.semanticID[e.Index] = e.ID
	}

	d.Reset()
	return d
}

func (d *Driver) SetSemantics(reg *semantics.Registry) { d.semantics = reg }
func (d *Driver) SetInput(input []types.Symbol)        { d.input = input }
func (d *Driver) SetDebug(on bool)                     { d.debug = on }
func (d *Driver) SetPartials(on bool)                  { d.usePartials = on }
func (d *Driver) GetEndID() types.SymbolID             { return types.SymbolID(d.tbl.End) }

func (d *Driver) GetTopSymbol() (types.Symbol, bool) {
	if len(d.symbolStack) == 0 {
		return types.Symbol{}, false
	}
	return d.symbolStack[len(d.symbolStack)-1], true
}

// Reset returns the Driver to its post-construction state without
// re-reading tables.
func (d *Driver) Reset() {
	d.nextInputIndex = 0
	d.lookahead = types.Symbol{}
	d.lookaheadIndex = 0
	d.symbolStack = nil
	d.stateStack = []int{d.tbl.Start}
	d.activeRules = map[types.SemanticID][]types.ActiveRule{}
	d.curRuleHandle = 0
}

func (d *Driver) getTermTableIndex(id types.SymbolID) int {
	idx, ok := d.termIdx[int(id)]
	if !ok {
		panic(fmt.Sprintf("lalr1: terminal id %d has no table index", id))
	}
	return idx
}

func (d *Driver) getNontermTableID(idx int) types.SymbolID {
	id, ok := d.nontermID[idx]
	if !ok {
		panic(fmt.Sprintf("lalr1: nonterminal index %d has no table id", idx))
	}
	return types.SymbolID(id)
}

func (d *Driver) getNontermTableIndex(id types.SymbolID) int {
	idx, ok := d.nontermIdx[int(id)]
	if !ok {
		panic(fmt.Sprintf("lalr1: nonterminal id %d has no table index", id))
	}
	return idx
}

func (d *Driver) getSemanticTableID(ruleIdx int) types.SemanticID {
	id, ok := d.semanticID[ruleIdx]
	if !ok {
		panic(fmt.Sprintf("lalr1: rule index %d has no semantic id", ruleIdx))
	}
	return types.SemanticID(id)
}

func (d *Driver) trace(format string, args ...interface{}) {
	if !d.debug || d.Trace == nil {
		return
	}
	d.Trace(fmt.Sprintf(format, args...))
}

func (d *Driver) nextLookahead() bool {
	if d.nextInputIndex >= len(d.input) {
		d.reportError(fmt.Sprintf("No lookahead available at input index %d.", d.nextInputIndex))
		return false
	}
	d.lookahead = d.input[d.nextInputIndex]
	d.lookaheadIndex = d.getTermTableIndex(d.lookahead.ID)
	d.trace("Lookahead: %+v, input index: %d.", d.lookahead, d.nextInputIndex)
	d.nextInputIndex++
	return true
}

func (d *Driver) pushLookahead() bool {
	d.symbolStack = append(d.symbolStack, d.lookahead)
	return d.nextLookahead()
}

func (d *Driver) reportError(msg string) {
	fmt.Println("Error: " + msg)
}

// Parse consumes the installed input, shifting and reducing until the
// grammar accepts it or an error ends the parse.
func (d *Driver) Parse() bool {
	d.Reset()
	if !d.nextLookahead() {
		return false
	}

	for d.nextInputIndex <= len(d.input) {
		s := d.stateStack[len(d.stateStack)-1]
		t := d.lookaheadIndex

		shift := d.tbl.Shift[s][t]
		red := d.tbl.Reduce[s][t]

		d.trace("Top state %d, new state %d, rule index %d, lookahead index %d.", s, shift, red, t)

		switch {
		case shift == tables.ERR && red == tables.ERR:
			d.reportError(fmt.Sprintf("No shift or reduce action defined for state %d and lookahead %d.", s, t))
			return false

		case shift != tables.ERR && red != tables.ERR:
			d.reportError(fmt.Sprintf("Shift/reduce conflict for state %d and lookahead %d.", s, t))
			return false

		case red == tables.ACC:
			d.trace("Accepted.")
			return true

		case shift != tables.ERR:
			if d.usePartials {
				if sem, matchLen, ok := d.tbl.PartialRuleForTerm(s, t); ok {
					if !d.applyPartialRule(types.SemanticID(sem), matchLen, true) {
						return false
					}
				}
			}
			d.stateStack = append(d.stateStack, shift)
			if !d.pushLookahead() {
				return false
			}

		case red != tables.ERR:
			if !d.reduce(red) {
				return false
			}
		}
	}

	return false
}

// reduce pops the rule's RHS, runs its semantic action (draining any
// active partial-rule occurrence), pushes the LHS nonterminal, runs the
// post-reduction partial-rule hook, then jumps.
func (d *Driver) reduce(ruleIdx int) bool {
	k := d.tbl.NumRHSSyms[ruleIdx]
	lhsIdx := d.tbl.LHSIdx[ruleIdx]
	semID := d.getSemanticTableID(ruleIdx)
	lhsID := d.getNontermTableID(lhsIdx)

	d.applyRule(semID, k, lhsID)

	if d.usePartials && len(d.symbolStack) > 0 {
		s := d.stateStack[len(d.stateStack)-1]
		nontermIdx := d.getNontermTableIndex(lhsID)
		if sem, matchLen, ok := d.tbl.PartialRuleForNonterm(s, nontermIdx); ok {
			if !d.applyPartialRule(types.SemanticID(sem), matchLen, false) {
				return false
			}
		}
	}

	newTop := d.stateStack[len(d.stateStack)-1]
	jumpState := d.tbl.Jump[newTop][lhsIdx]
	d.stateStack = append(d.stateStack, jumpState)
	return true
}

// applyRule pops numRHS symbols/states (preserving left-to-right order for
// the callback), drains the active-rule stack for sem if partials are
// enabled, calls the final (finished=true) semantic action if one is
// bound, and pushes the resulting nonterminal symbol.
func (d *Driver) applyRule(sem types.SemanticID, numRHS int, lhsID types.SymbolID) types.Value {
	d.trace("Applying rule %d with %d arguments.", sem, numRHS)

	args := make(semantics.Args, numRHS)
	for i := numRHS - 1; i >= 0; i-- {
		args[i] = d.symbolStack[len(d.symbolStack)-1]
		d.symbolStack = d.symbolStack[:len(d.symbolStack)-1]
		d.stateStack = d.stateStack[:len(d.stateStack)-1]
	}

	var retval types.Value
	if d.usePartials {
		if stack := d.activeRules[sem]; len(stack) > 0 {
			top := stack[len(stack)-1]
			d.activeRules[sem] = stack[:len(stack)-1]
			retval = top.RetVal
		}
	}

	if fn, ok := d.semantics.Lookup(sem); ok {
		retval = fn(args, true, retval)
	}

	d.symbolStack = append(d.symbolStack, types.Symbol{
		IsTerm: false,
		ID:     lhsID,
		Val:    retval,
	})

	return retval
}

func (d *Driver) allocHandle() int64 {
	h := d.curRuleHandle
	d.curRuleHandle++
	return h
}

func (d *Driver) topSymbols(n int) semantics.Args {
	args := make(semantics.Args, n)
	copy(args, d.symbolStack[len(d.symbolStack)-n:])
	return args
}

// applyPartialRule implements the partial-rule engine's invocation
// discipline. It returns false (and has already reported the error) if sem
// has no registered callback.
func (d *Driver) applyPartialRule(sem types.SemanticID, argLen int, beforeShift bool) bool {
	ruleLen := argLen
	if beforeShift {
		ruleLen++
	}

	stack := d.activeRules[sem]

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
				stack = append(stack, types.ActiveRule{SeenTokens: ruleLen, Handle: d.allocHandle()})
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
		stack = append(stack, types.ActiveRule{SeenTokens: ruleLen, Handle: d.allocHandle()})
		topIdx = 0
		seenTokensOld = 0
	}

	d.activeRules[sem] = stack

	if skip {
		return true
	}

	fn, ok := d.semantics.Lookup(sem)
	if !ok {
		d.reportError(fmt.Sprintf("Semantic rule %d is not defined.", sem))
		return false
	}

	args := d.topSymbols(argLen)

	if !beforeShift || seenTokensOld < ruleLen-1 {
		cur := d.activeRules[sem][topIdx]
		cur.RetVal = fn(args, false, cur.RetVal)
		d.activeRules[sem][topIdx] = cur
	}

	if beforeShift {
		withLookahead := make(semantics.Args, 0, len(args)+1)
		withLookahead = append(withLookahead, args...)
		withLookahead = append(withLookahead, d.lookahead)

		cur := d.activeRules[sem][topIdx]
		cur.RetVal = fn(withLookahead, false, cur.RetVal)
		d.activeRules[sem][topIdx] = cur
	}

	return true
}
