package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/zoobzio/cellz"
)

var inspectDump bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <sample>",
	Short: "Show the processor chains of a sample record",
	Long: `Show the steps composed for every field of a sample record, in the
order they run, for both reading and writing.

With --dump the annotations declared on each field are printed in full.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := getSampleByName(args[0])
		if !ok {
			return fmt.Errorf("unknown sample: %s", args[0])
		}
		record, err := s.Record()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d columns)\n", record.Name, len(record.Fields))
		for _, f := range record.Fields {
			fmt.Fprintf(out, "\n%s -> %s\n", f.Name, f.Column)
			for _, dir := range cellz.Both {
				plan, err := cellz.PlanFor(record, f, dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %s\n", plan)
			}
			if inspectDump {
				spew.Fdump(out, f.Annotations)
			}
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Dump the declared annotations of each field")
}
