package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled functions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range funcNames() {
			fn := demoFuncs[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-45s guess %v\n", fn.name, fn.formula, fn.guess)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
