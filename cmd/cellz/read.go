package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/zoobzio/cellz"
)

var (
	readDump  bool
	readStats bool
)

var readCmd = &cobra.Command{
	Use:   "read <sample> [file]",
	Short: "Read CSV rows into a sample record",
	Long: `Read CSV rows into a sample record and print them.

Without a file the sample's built-in data is read; "-" reads standard
input. Rejected rows are reported and reading continues.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := getSampleByName(args[0])
		if !ok {
			return fmt.Errorf("unknown sample: %s", args[0])
		}

		var in io.Reader = strings.NewReader(s.Input())
		if len(args) == 2 {
			if args[1] == "-" {
				in = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
		}

		b := cellz.NewBuilder()
		defer b.Close()

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()
		rows, rejected := 0, 0
		err := s.Read(cmd.Context(), in, b, func(row any, err error) {
			if err != nil {
				rejected++
				fmt.Fprintf(errOut, "rejected: %v\n", err)
				return
			}
			rows++
			if readDump {
				spew.Fdump(out, row)
				return
			}
			fmt.Fprintf(out, "%+v\n", row)
		})
		if err != nil {
			return err
		}

		if readStats {
			m := b.Metrics()
			fmt.Fprintf(out, "\nrows: %d, rejected: %d, chains built: %.0f\n",
				rows, rejected, m.Counter(cellz.BuilderBuildsTotal).Value())
		}
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readDump, "dump", false, "Dump each row in full")
	readCmd.Flags().BoolVar(&readStats, "stats", false, "Print row and chain counts")
}
