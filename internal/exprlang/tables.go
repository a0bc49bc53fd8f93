package exprlang

import "github.com/t-weber/lalr1/internal/lalr1/tables"

// Terminal column order. Column 0 must be END: the driver never advances
// past it. STR is carried so string tokens from the lexer resolve to a
// table column; no rule consumes one, so its actions stay empty and a
// string in the input reports a plain parse error instead of an unmapped
// id.
const (
	colEnd = iota
	colReal
	colInt
	colStr
	colIdent
	colPlus
	colMinus
	colStar
	colSlash
	colPercent
	colCaret
	colLParen
	colRParen
	colComma
	numCols
)

// Rule indices into NumRHSSyms/LHSIdx/SemanticIdx, in production order.
const (
	ruleStart = iota
	ruleExprAdd
	ruleExprSub
	ruleExprPass
	ruleTermMul
	ruleTermDiv
	ruleTermMod
	ruleTermPass
	ruleUnaryPlus
	ruleUnaryMinus
	ruleUnaryPass
	rulePow
	rulePowPass
	ruleAtomParen
	ruleAtomReal
	ruleAtomInt
	ruleAtomIdent
	ruleCall0
	ruleCall1
	ruleCall2
	numRules
)

// State indices, named after the canonical LR(0) item sets they come from.
const (
	stStart          = iota // I0
	stExpr                  // I1: START -> E ., E -> E . + T | E . - T
	stTerm                  // I2: E -> T ., T -> T . * U | T . / U | T . % U
	stUnaryToTerm           // I3: T -> U .
	stPowToUnary            // I4: U -> P .
	stAtom                  // I5: P -> A . ^ U | A .
	stUnaryPlus             // I6: U -> + . U
	stUnaryMinus            // I7: U -> - . U
	stLParen                // I8: A -> ( . E )
	stReal                  // I9: A -> REAL .
	stInt                   // I10: A -> INT .
	stIdent                 // I11: A -> IDENT . | IDENT . ( ...
	stAfterPlus             // I12: E -> E + . T
	stAfterMinus            // I13: E -> E - . T
	stAfterStar             // I14: T -> T * . U
	stAfterSlash            // I15: T -> T / . U
	stAfterPercent          // I16: T -> T % . U
	stAfterCaret            // I17: P -> A ^ . U
	stUnaryPlusDone         // I18: U -> + U .
	stUnaryMinusDone        // I19: U -> - U .
	stAccept                // I20: START ., accept on END
	stParenExpr             // I21: A -> ( E . )
	stCallOpen              // I22: A -> IDENT ( . ...
	stAddDone               // I23: E -> E + T .
	stSubDone               // I24: E -> E - T .
	stMulDone               // I25: T -> T * U .
	stDivDone               // I26: T -> T / U .
	stModDone               // I27: T -> T % U .
	stPowDone               // I28: P -> A ^ U .
	stParenDone             // I29: A -> ( E ) .
	stCall0Done             // I30: A -> IDENT ( ) .
	stCallArg1              // I31: A -> IDENT ( E . ) | IDENT ( E . , E )
	stCall1Done             // I32: A -> IDENT ( E ) .
	stCallComma             // I33: A -> IDENT ( E , . E )
	stCallArg2              // I34: A -> IDENT ( E , E . )
	stCall2Done             // I35: A -> IDENT ( E , E ) .
	numStates
)

const err = tables.ERR
const acc = tables.ACC

// Shorthands for the partial-rule tables below.
const (
	semStart = int(SemStartID)
	semBrk   = int(SemBracketsID)
	semAdd   = int(SemAddID)
	semSub   = int(SemSubID)
	semMul   = int(SemMulID)
	semDiv   = int(SemDivID)
	semMod   = int(SemModID)
	semPow   = int(SemPowID)
	semUadd  = int(SemUaddID)
	semUsub  = int(SemUsubID)
	semCall0 = int(SemCall0ID)
	semCall1 = int(SemCall1ID)
	semCall2 = int(SemCall2ID)
)

// Tables is the concrete, hand-derived LALR(1) table set for this
// package's grammar (see the package doc comment). Building it from item
// sets is out of scope for the runtime; this value plays the role of an
// externally supplied artifact.
var Tables = &tables.Tables{
	Start: stStart,
	End:   int(TokEndID),

	// Columns: END REAL INT STR IDENT + - * / % ^ ( ) ,
	Shift: [][]int{
		stStart:          {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stExpr:           {err, err, err, err, err, stAfterPlus, stAfterMinus, err, err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err, err, stAfterStar, stAfterSlash, stAfterPercent, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err, err, err, err, err, stAfterCaret, err, err, err},
		stUnaryPlus:      {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stUnaryMinus:     {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stLParen:         {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stReal:           {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err, err, err, err, err, err, stCallOpen, err, err},
		stAfterPlus:      {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stAfterMinus:     {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stAfterStar:      {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stAfterSlash:     {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stAfterPercent:   {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stAfterCaret:     {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stUnaryPlusDone:  {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, stAfterPlus, stAfterMinus, err, err, err, err, err, stParenDone, err},
		stCallOpen:       {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, stCall0Done, err},
		stAddDone:        {err, err, err, err, err, err, err, stAfterStar, stAfterSlash, stAfterPercent, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err, err, stAfterStar, stAfterSlash, stAfterPercent, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, stAfterPlus, stAfterMinus, err, err, err, err, err, stCall1Done, stCallComma},
		stCall1Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallComma:      {err, stReal, stInt, err, stIdent, stUnaryPlus, stUnaryMinus, err, err, err, err, stLParen, err, err},
		stCallArg2:       {err, err, err, err, err, stAfterPlus, stAfterMinus, err, err, err, err, err, stCall2Done, err},
		stCall2Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
	},

	Reduce: [][]int{
		stStart:          {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stExpr:           {ruleStart, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stTerm:           {ruleExprPass, err, err, err, err, ruleExprPass, ruleExprPass, err, err, err, err, err, ruleExprPass, ruleExprPass},
		stUnaryToTerm:    {ruleTermPass, err, err, err, err, ruleTermPass, ruleTermPass, ruleTermPass, ruleTermPass, ruleTermPass, err, err, ruleTermPass, ruleTermPass},
		stPowToUnary:     {ruleUnaryPass, err, err, err, err, ruleUnaryPass, ruleUnaryPass, ruleUnaryPass, ruleUnaryPass, ruleUnaryPass, err, err, ruleUnaryPass, ruleUnaryPass},
		stAtom:           {rulePowPass, err, err, err, err, rulePowPass, rulePowPass, rulePowPass, rulePowPass, rulePowPass, err, err, rulePowPass, rulePowPass},
		stUnaryPlus:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stUnaryMinus:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stLParen:         {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stReal:           {ruleAtomReal, err, err, err, err, ruleAtomReal, ruleAtomReal, ruleAtomReal, ruleAtomReal, ruleAtomReal, ruleAtomReal, err, ruleAtomReal, ruleAtomReal},
		stInt:            {ruleAtomInt, err, err, err, err, ruleAtomInt, ruleAtomInt, ruleAtomInt, ruleAtomInt, ruleAtomInt, ruleAtomInt, err, ruleAtomInt, ruleAtomInt},
		stIdent:          {ruleAtomIdent, err, err, err, err, ruleAtomIdent, ruleAtomIdent, ruleAtomIdent, ruleAtomIdent, ruleAtomIdent, ruleAtomIdent, err, ruleAtomIdent, ruleAtomIdent},
		stAfterPlus:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterMinus:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterStar:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterSlash:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterPercent:   {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterCaret:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stUnaryPlusDone:  {ruleUnaryPlus, err, err, err, err, ruleUnaryPlus, ruleUnaryPlus, ruleUnaryPlus, ruleUnaryPlus, ruleUnaryPlus, err, err, ruleUnaryPlus, ruleUnaryPlus},
		stUnaryMinusDone: {ruleUnaryMinus, err, err, err, err, ruleUnaryMinus, ruleUnaryMinus, ruleUnaryMinus, ruleUnaryMinus, ruleUnaryMinus, err, err, ruleUnaryMinus, ruleUnaryMinus},
		stAccept:         {acc, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallOpen:       {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAddDone:        {ruleExprAdd, err, err, err, err, ruleExprAdd, ruleExprAdd, err, err, err, err, err, ruleExprAdd, ruleExprAdd},
		stSubDone:        {ruleExprSub, err, err, err, err, ruleExprSub, ruleExprSub, err, err, err, err, err, ruleExprSub, ruleExprSub},
		stMulDone:        {ruleTermMul, err, err, err, err, ruleTermMul, ruleTermMul, ruleTermMul, ruleTermMul, ruleTermMul, err, err, ruleTermMul, ruleTermMul},
		stDivDone:        {ruleTermDiv, err, err, err, err, ruleTermDiv, ruleTermDiv, ruleTermDiv, ruleTermDiv, ruleTermDiv, err, err, ruleTermDiv, ruleTermDiv},
		stModDone:        {ruleTermMod, err, err, err, err, ruleTermMod, ruleTermMod, ruleTermMod, ruleTermMod, ruleTermMod, err, err, ruleTermMod, ruleTermMod},
		stPowDone:        {rulePow, err, err, err, err, rulePow, rulePow, rulePow, rulePow, rulePow, err, err, rulePow, rulePow},
		stParenDone:      {ruleAtomParen, err, err, err, err, ruleAtomParen, ruleAtomParen, ruleAtomParen, ruleAtomParen, ruleAtomParen, ruleAtomParen, err, ruleAtomParen, ruleAtomParen},
		stCall0Done:      {ruleCall0, err, err, err, err, ruleCall0, ruleCall0, ruleCall0, ruleCall0, ruleCall0, ruleCall0, err, ruleCall0, ruleCall0},
		stCallArg1:       {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCall1Done:      {ruleCall1, err, err, err, err, ruleCall1, ruleCall1, ruleCall1, ruleCall1, ruleCall1, ruleCall1, err, ruleCall1, ruleCall1},
		stCallComma:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallArg2:       {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCall2Done:      {ruleCall2, err, err, err, err, ruleCall2, ruleCall2, ruleCall2, ruleCall2, ruleCall2, ruleCall2, err, ruleCall2, ruleCall2},
	},

	// Jump columns: [START, EXPR, TERM, UNARY, POW, ATOM] per NontermIdx.
	Jump: [][]int{
		stStart:          {stAccept, stExpr, stTerm, stUnaryToTerm, stPowToUnary, stAtom},
		stExpr:           {err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err},
		stUnaryPlus:      {err, err, err, stUnaryPlusDone, stPowToUnary, stAtom},
		stUnaryMinus:     {err, err, err, stUnaryMinusDone, stPowToUnary, stAtom},
		stLParen:         {err, stParenExpr, stTerm, stUnaryToTerm, stPowToUnary, stAtom},
		stReal:           {err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err},
		stAfterPlus:      {err, err, stAddDone, stUnaryToTerm, stPowToUnary, stAtom},
		stAfterMinus:     {err, err, stSubDone, stUnaryToTerm, stPowToUnary, stAtom},
		stAfterStar:      {err, err, err, stMulDone, stPowToUnary, stAtom},
		stAfterSlash:     {err, err, err, stDivDone, stPowToUnary, stAtom},
		stAfterPercent:   {err, err, err, stModDone, stPowToUnary, stAtom},
		stAfterCaret:     {err, err, err, stPowDone, stPowToUnary, stAtom},
		stUnaryPlusDone:  {err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, err},
		stCallOpen:       {err, stCallArg1, stTerm, stUnaryToTerm, stPowToUnary, stAtom},
		stAddDone:        {err, err, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, err},
		stCall1Done:      {err, err, err, err, err, err},
		stCallComma:      {err, stCallArg2, stTerm, stUnaryToTerm, stPowToUnary, stAtom},
		stCallArg2:       {err, err, err, err, err, err},
		stCall2Done:      {err, err, err, err, err, err},
	},

	NumRHSSyms: []int{
		ruleStart:      1,
		ruleExprAdd:    3,
		ruleExprSub:    3,
		ruleExprPass:   1,
		ruleTermMul:    3,
		ruleTermDiv:    3,
		ruleTermMod:    3,
		ruleTermPass:   1,
		ruleUnaryPlus:  2,
		ruleUnaryMinus: 2,
		ruleUnaryPass:  1,
		rulePow:        3,
		rulePowPass:    1,
		ruleAtomParen:  3,
		ruleAtomReal:   1,
		ruleAtomInt:    1,
		ruleAtomIdent:  1,
		ruleCall0:      3,
		ruleCall1:      4,
		ruleCall2:      6,
	},

	LHSIdx: []int{
		ruleStart:      idxStart,
		ruleExprAdd:    idxExpr,
		ruleExprSub:    idxExpr,
		ruleExprPass:   idxExpr,
		ruleTermMul:    idxTerm,
		ruleTermDiv:    idxTerm,
		ruleTermMod:    idxTerm,
		ruleTermPass:   idxTerm,
		ruleUnaryPlus:  idxUnary,
		ruleUnaryMinus: idxUnary,
		ruleUnaryPass:  idxUnary,
		rulePow:        idxPow,
		rulePowPass:    idxPow,
		ruleAtomParen:  idxAtom,
		ruleAtomReal:   idxAtom,
		ruleAtomInt:    idxAtom,
		ruleAtomIdent:  idxAtom,
		ruleCall0:      idxAtom,
		ruleCall1:      idxAtom,
		ruleCall2:      idxAtom,
	},

	TermIdx: []tables.Entry{
		{ID: int(TokEndID), Index: colEnd, Label: "END"},
		{ID: int(TokRealID), Index: colReal, Label: "REAL"},
		{ID: int(TokIntID), Index: colInt, Label: "INT"},
		{ID: int(TokStrID), Index: colStr, Label: "STR"},
		{ID: int(TokIdentID), Index: colIdent, Label: "IDENT"},
		{ID: int(TokPlusID), Index: colPlus, Label: "+"},
		{ID: int(TokMinusID), Index: colMinus, Label: "-"},
		{ID: int(TokStarID), Index: colStar, Label: "*"},
		{ID: int(TokSlashID), Index: colSlash, Label: "/"},
		{ID: int(TokPercID), Index: colPercent, Label: "%"},
		{ID: int(TokCaretID), Index: colCaret, Label: "^"},
		{ID: int(TokLParenID), Index: colLParen, Label: "("},
		{ID: int(TokRParenID), Index: colRParen, Label: ")"},
		{ID: int(TokCommaID), Index: colComma, Label: ","},
	},

	NontermIdx: []tables.Entry{
		{ID: int(NontermStart), Index: idxStart, Label: "START"},
		{ID: int(NontermExpr), Index: idxExpr, Label: "EXPR"},
		{ID: int(NontermTerm), Index: idxTerm, Label: "TERM"},
		{ID: int(NontermUnary), Index: idxUnary, Label: "UNARY"},
		{ID: int(NontermPow), Index: idxPow, Label: "POW"},
		{ID: int(NontermAtom), Index: idxAtom, Label: "ATOM"},
	},

	SemanticIdx: []tables.Entry{
		{ID: int(SemStartID), Index: ruleStart},
		{ID: int(SemAddID), Index: ruleExprAdd},
		{ID: int(SemSubID), Index: ruleExprSub},
		{ID: int(SemPassID), Index: ruleExprPass},
		{ID: int(SemMulID), Index: ruleTermMul},
		{ID: int(SemDivID), Index: ruleTermDiv},
		{ID: int(SemModID), Index: ruleTermMod},
		{ID: int(SemPassID), Index: ruleTermPass},
		{ID: int(SemUaddID), Index: ruleUnaryPlus},
		{ID: int(SemUsubID), Index: ruleUnaryMinus},
		{ID: int(SemPassID), Index: ruleUnaryPass},
		{ID: int(SemPowID), Index: rulePow},
		{ID: int(SemPassID), Index: rulePowPass},
		{ID: int(SemBracketsID), Index: ruleAtomParen},
		{ID: int(SemRealID), Index: ruleAtomReal},
		{ID: int(SemIntID), Index: ruleAtomInt},
		{ID: int(SemIdentID), Index: ruleAtomIdent},
		{ID: int(SemCall0ID), Index: ruleCall0},
		{ID: int(SemCall1ID), Index: ruleCall1},
		{ID: int(SemCall2ID), Index: ruleCall2},
	},

	// Partial-rule tables, derived from each state's kernel item: the
	// semantic id of the uniquely in-progress rule and the number of its
	// RHS symbols already on the stack (the dot position). States whose
	// kernel leaves more than one rule in play (IDENT before '(', a call
	// argument that could still become call1 or call2) carry no entry;
	// the stratification (pass) and literal rules appear and reduce in
	// one step and carry none either.
	PartialsRuleTerm: [][]int{
		stStart:          {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stExpr:           {err, err, err, err, err, semAdd, semSub, err, err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err, err, semMul, semDiv, semMod, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err, err, err, err, err, semPow, err, err, err},
		stUnaryPlus:      {err, semUadd, semUadd, err, semUadd, semUadd, semUadd, err, err, err, err, semUadd, err, err},
		stUnaryMinus:     {err, semUsub, semUsub, err, semUsub, semUsub, semUsub, err, err, err, err, semUsub, err, err},
		stLParen:         {err, semBrk, semBrk, err, semBrk, semBrk, semBrk, err, err, err, err, semBrk, err, err},
		stReal:           {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterPlus:      {err, semAdd, semAdd, err, semAdd, semAdd, semAdd, err, err, err, err, semAdd, err, err},
		stAfterMinus:     {err, semSub, semSub, err, semSub, semSub, semSub, err, err, err, err, semSub, err, err},
		stAfterStar:      {err, semMul, semMul, err, semMul, semMul, semMul, err, err, err, err, semMul, err, err},
		stAfterSlash:     {err, semDiv, semDiv, err, semDiv, semDiv, semDiv, err, err, err, err, semDiv, err, err},
		stAfterPercent:   {err, semMod, semMod, err, semMod, semMod, semMod, err, err, err, err, semMod, err, err},
		stAfterCaret:     {err, semPow, semPow, err, semPow, semPow, semPow, err, err, err, err, semPow, err, err},
		stUnaryPlusDone:  {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, semAdd, semSub, err, err, err, err, err, semBrk, err},
		stCallOpen:       {err, err, err, err, err, err, err, err, err, err, err, err, semCall0, err},
		stAddDone:        {err, err, err, err, err, err, err, semMul, semDiv, semMod, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err, err, semMul, semDiv, semMod, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, semAdd, semSub, err, err, err, err, err, semCall1, semCall2},
		stCall1Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallComma:      {err, semCall2, semCall2, err, semCall2, semCall2, semCall2, err, err, err, err, semCall2, err, err},
		stCallArg2:       {err, err, err, err, err, semAdd, semSub, err, err, err, err, err, semCall2, err},
		stCall2Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
	},

	PartialsMatchLenTerm: [][]int{
		stStart:          {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stExpr:           {err, err, err, err, err, 1, 1, err, err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err, err, 1, 1, 1, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err, err, err, err, err, 1, err, err, err},
		stUnaryPlus:      {err, 1, 1, err, 1, 1, 1, err, err, err, err, 1, err, err},
		stUnaryMinus:     {err, 1, 1, err, 1, 1, 1, err, err, err, err, 1, err, err},
		stLParen:         {err, 1, 1, err, 1, 1, 1, err, err, err, err, 1, err, err},
		stReal:           {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAfterPlus:      {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stAfterMinus:     {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stAfterStar:      {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stAfterSlash:     {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stAfterPercent:   {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stAfterCaret:     {err, 2, 2, err, 2, 2, 2, err, err, err, err, 2, err, err},
		stUnaryPlusDone:  {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, 1, 1, err, err, err, err, err, 2, err},
		stCallOpen:       {err, err, err, err, err, err, err, err, err, err, err, err, 2, err},
		stAddDone:        {err, err, err, err, err, err, err, 1, 1, 1, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err, err, 1, 1, 1, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, 1, 1, err, err, err, err, err, 3, 3},
		stCall1Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
		stCallComma:      {err, 4, 4, err, 4, 4, 4, err, err, err, err, 4, err, err},
		stCallArg2:       {err, err, err, err, err, 1, 1, err, err, err, err, err, 5, err},
		stCall2Done:      {err, err, err, err, err, err, err, err, err, err, err, err, err, err},
	},

	// Nonterminal partials fire after the rule's nonterminal RHS symbol
	// has fully reduced, just before the jump: columns as in Jump.
	PartialsRuleNonterm: [][]int{
		stStart:          {err, semStart, err, err, err, err},
		stExpr:           {err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err},
		stUnaryPlus:      {err, err, err, semUadd, err, err},
		stUnaryMinus:     {err, err, err, semUsub, err, err},
		stLParen:         {err, semBrk, err, err, err, err},
		stReal:           {err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err},
		stAfterPlus:      {err, err, semAdd, err, err, err},
		stAfterMinus:     {err, err, semSub, err, err, err},
		stAfterStar:      {err, err, err, semMul, err, err},
		stAfterSlash:     {err, err, err, semDiv, err, err},
		stAfterPercent:   {err, err, err, semMod, err, err},
		stAfterCaret:     {err, err, err, semPow, err, err},
		stUnaryPlusDone:  {err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, err},
		stCallOpen:       {err, err, err, err, err, err},
		stAddDone:        {err, err, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, err},
		stCall1Done:      {err, err, err, err, err, err},
		stCallComma:      {err, semCall2, err, err, err, err},
		stCallArg2:       {err, err, err, err, err, err},
		stCall2Done:      {err, err, err, err, err, err},
	},

	PartialsMatchLenNonterm: [][]int{
		stStart:          {err, 1, err, err, err, err},
		stExpr:           {err, err, err, err, err, err},
		stTerm:           {err, err, err, err, err, err},
		stUnaryToTerm:    {err, err, err, err, err, err},
		stPowToUnary:     {err, err, err, err, err, err},
		stAtom:           {err, err, err, err, err, err},
		stUnaryPlus:      {err, err, err, 2, err, err},
		stUnaryMinus:     {err, err, err, 2, err, err},
		stLParen:         {err, 2, err, err, err, err},
		stReal:           {err, err, err, err, err, err},
		stInt:            {err, err, err, err, err, err},
		stIdent:          {err, err, err, err, err, err},
		stAfterPlus:      {err, err, 3, err, err, err},
		stAfterMinus:     {err, err, 3, err, err, err},
		stAfterStar:      {err, err, err, 3, err, err},
		stAfterSlash:     {err, err, err, 3, err, err},
		stAfterPercent:   {err, err, err, 3, err, err},
		stAfterCaret:     {err, err, err, 3, err, err},
		stUnaryPlusDone:  {err, err, err, err, err, err},
		stUnaryMinusDone: {err, err, err, err, err, err},
		stAccept:         {err, err, err, err, err, err},
		stParenExpr:      {err, err, err, err, err, err},
		stCallOpen:       {err, err, err, err, err, err},
		stAddDone:        {err, err, err, err, err, err},
		stSubDone:        {err, err, err, err, err, err},
		stMulDone:        {err, err, err, err, err, err},
		stDivDone:        {err, err, err, err, err, err},
		stModDone:        {err, err, err, err, err, err},
		stPowDone:        {err, err, err, err, err, err},
		stParenDone:      {err, err, err, err, err, err},
		stCall0Done:      {err, err, err, err, err, err},
		stCallArg1:       {err, err, err, err, err, err},
		stCall1Done:      {err, err, err, err, err, err},
		stCallComma:      {err, 5, err, err, err, err},
		stCallArg2:       {err, err, err, err, err, err},
		stCall2Done:      {err, err, err, err, err, err},
	},
}

// Nonterminal table indices, used by the Jump rows above.
const (
	idxStart = iota
	idxExpr
	idxTerm
	idxUnary
	idxPow
	idxAtom
)
