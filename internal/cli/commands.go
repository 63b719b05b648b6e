package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/models"
)

func newBalancesCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Aggregate transfers into net balances",
		Long:  `Reads a JSON array of {"from","to","amount"} transfers and prints the net balance of each person, sorted by name.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var transfers []models.Transfer
			if err := readInput(cmd, flags, &transfers); err != nil {
				return err
			}

			balances, err := flags.engine().Balances(cmd.Context(), transfers)
			if err != nil {
				return err
			}

			slog.Debug("Balances calculated", "transfers_count", len(transfers), "balances_count", len(balances))
			return writeOutput(cmd, flags, balances)
		},
	}
}

func newMinimizeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize",
		Short: "Compute the transfers that settle a set of balances",
		Long:  `Reads a JSON array of {"name","amount"} balances and prints {"updatedBalances","transactions"}.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var balances []models.Balance
			if err := readInput(cmd, flags, &balances); err != nil {
				return err
			}

			settlement := flags.engine().Minimize(balances)
			if !settlement.IsSettled() {
				slog.Warn("Balances do not sum to zero, residual amounts remain", "total", models.TotalBalance(balances).String())
			}
			return writeOutput(cmd, flags, settlement)
		},
	}
}

func newSettleCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Aggregate transfers and settle the resulting balances",
		Long:  `Reads a JSON array of transfers and prints the settlement of their net balances.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var transfers []models.Transfer
			if err := readInput(cmd, flags, &transfers); err != nil {
				return err
			}

			_, settlement, err := flags.engine().Settle(cmd.Context(), transfers)
			if err != nil {
				return err
			}
			return writeOutput(cmd, flags, settlement)
		},
	}
}

func newSplitCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Split a shared expense into transfers",
		Long: `Reads an expense object {"payer","total","subtotal","participants","items"} and prints
the transfers from the payer to each participant. Pipe the result into "balances" or "settle".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var expense *models.Expense
			if err := readInput(cmd, flags, &expense); err != nil {
				return err
			}

			transfers, err := flags.engine().Split(*expense)
			if err != nil {
				return err
			}
			return writeOutput(cmd, flags, transfers)
		},
	}
}
