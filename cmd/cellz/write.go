package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoobzio/cellz"
)

var writeCmd = &cobra.Command{
	Use:   "write <sample>",
	Short: "Write the rows of a sample record as CSV",
	Long:  "Write the built-in rows of a sample record to standard output through its write chains.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := getSampleByName(args[0])
		if !ok {
			return fmt.Errorf("unknown sample: %s", args[0])
		}
		b := cellz.NewBuilder()
		defer b.Close()
		return s.Write(cmd.Context(), cmd.OutOrStdout(), b)
	},
}
