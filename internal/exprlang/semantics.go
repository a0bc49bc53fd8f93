package exprlang

import (
	"fmt"
	"math"

	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/lalr1/types"
)

// BindSemantics installs the full expression-grammar action table into
// reg: arithmetic and unary operators, literals, identifier resolution,
// and function calls, plus SemPassID for the stratification rules.
func BindSemantics(reg *semantics.Registry) {
	reg.BindFunc(SemPassID, func(args semantics.Args) types.Value {
		return args[0].Val
	})

	reg.BindFunc(SemStartID, func(args semantics.Args) types.Value {
		return args[0].Val
	})

	reg.BindFunc(SemBracketsID, func(args semantics.Args) types.Value {
		return args[1].Val
	})

	reg.BindFunc(SemAddID, func(args semantics.Args) types.Value {
		return args[0].Val + args[2].Val
	})

	reg.BindFunc(SemSubID, func(args semantics.Args) types.Value {
		return args[0].Val - args[2].Val
	})

	reg.BindFunc(SemMulID, func(args semantics.Args) types.Value {
		return args[0].Val * args[2].Val
	})

	reg.BindFunc(SemDivID, func(args semantics.Args) types.Value {
		return args[0].Val / args[2].Val
	})

	reg.BindFunc(SemModID, func(args semantics.Args) types.Value {
		return args[0].Val % args[2].Val
	})

	reg.BindFunc(SemPowID, func(args semantics.Args) types.Value {
		return int64(math.Pow(float64(args[0].Val), float64(args[2].Val)))
	})

	reg.BindFunc(SemUaddID, func(args semantics.Args) types.Value {
		return args[1].Val
	})

	reg.BindFunc(SemUsubID, func(args semantics.Args) types.Value {
		return -args[1].Val
	})

	reg.BindFunc(SemRealID, func(args semantics.Args) types.Value {
		return args[0].Val
	})

	reg.BindFunc(SemIntID, func(args semantics.Args) types.Value {
		return args[0].Val
	})

	reg.BindFunc(SemIdentID, resolveIdent)

	reg.BindFunc(SemCall0ID, func(args semantics.Args) types.Value {
		return 0
	})

	reg.BindFunc(SemCall1ID, callFunc1)
	reg.BindFunc(SemCall2ID, callFunc2)
}

// resolveIdent implements the single named constant the grammar
// recognizes; anything else is reported and yields zero.
func resolveIdent(args semantics.Args) types.Value {
	lexeme, ok := args[0].Lexeme()
	if !ok {
		return 0
	}

	switch lexeme {
	case "pi":
		piVal := math.Pi
		return int64(piVal)
	default:
		fmt.Printf("Identifier %q is unknown.\n", lexeme)
		return 0
	}
}

func callFunc1(args semantics.Args) types.Value {
	lexeme, ok := args[0].Lexeme()
	if !ok {
		return 0
	}

	arg1 := float64(args[2].Val)

	switch lexeme {
	case "sqrt":
		return int64(math.Sqrt(arg1))
	case "sin":
		return int64(math.Sin(arg1))
	case "cos":
		return int64(math.Cos(arg1))
	case "tan":
		return int64(math.Tan(arg1))
	default:
		fmt.Printf("Function %q is unknown.\n", lexeme)
		return 0
	}
}

func callFunc2(args semantics.Args) types.Value {
	lexeme, ok := args[0].Lexeme()
	if !ok {
		return 0
	}

	arg1 := float64(args[2].Val)
	arg2 := float64(args[4].Val)

	switch lexeme {
	case "pow":
		return int64(math.Pow(arg1, arg2))
	default:
		fmt.Printf("Function %q is unknown.\n", lexeme)
		return 0
	}
}
