package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t-weber/lalr1/internal/exprlang"
	"github.com/t-weber/lalr1/internal/lalr1/generate"
)

const generatedFileName = "generated_parser.go"

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile the example grammar into a recursive-ascent parser",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	rootCmd.AddCommand(cmd)
}

// runGenerate emits the same partials-enabled build that is committed
// under internal/exprlang/generated.
func runGenerate(cmd *cobra.Command, args []string) error {
	src, err := generate.Generate(exprlang.Tables, generate.Options{PackageName: "generated", Partials: true})
	if err != nil {
		fmt.Printf("Failed to write parser %q: %v.\n", generatedFileName, err)
		return err
	}

	if err := os.WriteFile(generatedFileName, src, 0644); err != nil {
		fmt.Printf("Failed to write parser %q: %v.\n", generatedFileName, err)
		return err
	}

	fmt.Printf("Successfully wrote parser %q with %d bytes.\n", generatedFileName, len(src))
	return nil
}
