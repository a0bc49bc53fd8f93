package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/t-weber/lalr1/internal/exprlang"
	"github.com/t-weber/lalr1/internal/exprlang/generated"
	"github.com/t-weber/lalr1/internal/lalr1/parse"
	"github.com/t-weber/lalr1/internal/lalr1/semantics"
	"github.com/t-weber/lalr1/internal/replio"
)

var replFlags = struct {
	debug     *bool
	partials  *bool
	direct    *bool
	generated *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin and print their value",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	replFlags.debug = cmd.Flags().Bool("debug", false, "trace parser steps to stdout")
	replFlags.partials = cmd.Flags().Bool("partials", false, "enable the partial-rule engine")
	replFlags.direct = cmd.Flags().Bool("direct", false, "read stdin directly, without line editing")
	replFlags.generated = cmd.Flags().Bool("generated", false, "use the recursive-ascent parser instead of the table-driven driver")
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := replio.LoadConfig(".lalr1rc.toml")
	if err != nil {
		return err
	}
	if *replFlags.debug {
		cfg.Debug = true
	}
	if *replFlags.partials {
		cfg.Partials = true
	}

	reader, err := replio.NewReader(cfg.Prompt, *replFlags.direct)
	if err != nil {
		return err
	}
	defer reader.Close()

	var parser parse.Parsable
	if *replFlags.generated {
		parser = generated.New()
	} else {
		driver := parse.New(exprlang.Tables)
		driver.Trace = func(line string) { fmt.Println(line) }
		parser = driver
	}

	reg := semantics.New()
	exprlang.BindSemantics(reg)
	parser.SetSemantics(reg)
	parser.SetDebug(cfg.Debug)
	parser.SetPartials(cfg.Partials)

	if cfg.Debug {
		fmt.Println(exprlang.Tables.Dump())
	}

	pterm.Info.Println("lalr1 expression REPL — send EOF to exit")

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		tokens := exprlang.Lex(line)
		if cfg.Debug {
			fmt.Printf("Tokens: %+v.\n", tokens)
		}

		parser.SetInput(tokens)
		if !parser.Parse() {
			fmt.Println("Error: Parsing failed.")
			continue
		}

		top, ok := parser.GetTopSymbol()
		if !ok {
			fmt.Println("Error: Parsing failed.")
			continue
		}
		fmt.Println(top.Val)
	}
}
