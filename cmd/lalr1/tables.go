package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t-weber/lalr1/internal/exprlang"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the example grammar's action and jump tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(exprlang.Tables.Dump())
		},
	}
	rootCmd.AddCommand(cmd)
}
