package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listKinds bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sample records",
	Long:  "Display the built-in sample records, or the registered annotation kinds with --kinds.",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		if listKinds {
			fmt.Fprintln(out, "Annotation kinds:")
			fmt.Fprintln(out)
			for _, name := range registry.Names() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return
		}
		fmt.Fprintln(out, "Available samples:")
		fmt.Fprintln(out)
		for _, s := range getAllSamples() {
			fmt.Fprintf(out, "  %-10s %s\n", s.Name(), s.Description())
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listKinds, "kinds", false, "List annotation kinds instead of samples")
}
