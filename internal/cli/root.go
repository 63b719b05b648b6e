// Package cli implements settlectl, a command line front end for the
// settlement calculator. Every command reads a JSON document from --input
// (stdin by default) and writes JSON to --output (stdout by default).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
)

// Flags shared by every command.
type Flags struct {
	Input             string
	Output            string
	Workers           int
	ParallelThreshold int
	Pretty            bool
}

func (f *Flags) engine() *calculator.Engine {
	return calculator.NewEngine(f.Workers, f.ParallelThreshold)
}

// NewRootCommand builds the settlectl command tree.
func NewRootCommand() *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "settlectl",
		Short: "Compute balances and settle debts between people.",
		Long: `settlectl turns a list of transfers into net balances and computes
the transfers that settle them.

Amounts are exact decimals. Input and output are JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.Workers < 1 {
				return fmt.Errorf("--workers %d: %w", flags.Workers, calculator.ErrInvalidWorkers)
			}
			if flags.ParallelThreshold < 0 {
				return fmt.Errorf("--parallel-threshold %d: must not be negative", flags.ParallelThreshold)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Input, "input", "i", "", "input JSON file (default: stdin)")
	pf.StringVarP(&flags.Output, "output", "o", "", "output JSON file (default: stdout)")
	pf.IntVarP(&flags.Workers, "workers", "w", 1, "goroutines used to aggregate transfers")
	pf.IntVar(&flags.ParallelThreshold, "parallel-threshold", 10000, "minimum number of transfers aggregated in parallel (0 disables)")
	pf.BoolVar(&flags.Pretty, "pretty", false, "indent the JSON output")

	cmd.AddCommand(
		newBalancesCommand(flags),
		newMinimizeCommand(flags),
		newSettleCommand(flags),
		newSplitCommand(flags),
	)
	return cmd
}
