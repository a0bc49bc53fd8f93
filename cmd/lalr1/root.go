/*
Lalr1 drives the table-driven and recursive-ascent parsers over the
arithmetic-expression example.

Usage:

	lalr1 generate
		Compile the example grammar's tables into generated_parser.go
		and report the number of bytes written.

	lalr1 repl [--debug] [--partials] [--direct] [--generated]
		Read expressions from stdin, one per line, and print the value
		of each. Uses the table-driven driver unless --generated picks
		the recursive-ascent parser.

	lalr1 tables
		Print the example grammar's action and jump tables.

To exit the REPL, send EOF (ctrl-D).
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lalr1",
	Short:         "Drive or compile the example LALR(1) expression parser",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
