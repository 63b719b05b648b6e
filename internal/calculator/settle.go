package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// MinimizeTransfers computes the transfers needed to bring every balance to
// zero.
//
// Algorithm:
//   - Copy the balances and stable-sort them ascending by amount, so the
//     biggest debtor comes first and the biggest creditor last. Equal amounts
//     keep their input order.
//   - Walk two cursors inwards: lo over debtors, hi over creditors.
//   - Each step the debtor pays the creditor min(|debt|, credit). At least one
//     side reaches zero and its cursor moves, so there are at most n-1 steps
//     and at most n-1 transfers.
//
// The caller's slice is never modified. If the balances do not sum to zero the
// loop still ends, leaving residual amounts on the balances in the middle.
func MinimizeTransfers(balances []models.Balance) models.Settlement {
	if len(balances) == 0 {
		return models.EmptySettlement()
	}

	working := slices.Clone(balances)
	slices.SortStableFunc(working, func(a, b models.Balance) int {
		return a.Amount.Cmp(b.Amount)
	})

	transfers := make([]models.Transfer, 0, len(working)-1)
	lo, hi := 0, len(working)-1
	for lo < hi {
		debtor := &working[lo]
		creditor := &working[hi]

		debt := debtor.Amount.Abs()
		amount := decimal.Min(debt, creditor.Amount)
		// Skip zero transfers when a cursor sits on an already settled balance.
		if !amount.IsZero() {
			transfers = append(transfers, models.NewTransfer(debtor.Name, creditor.Name, amount))
		}

		diff := creditor.Amount.Sub(debt)
		debtor.Amount = decimal.Min(decimal.Zero, diff)   // < 0: still has debt
		creditor.Amount = decimal.Max(decimal.Zero, diff) // > 0: still to receive

		if debtor.Amount.IsZero() {
			lo++
		}
		if creditor.Amount.IsZero() {
			hi--
		}
	}

	return models.Settlement{
		UpdatedBalances: working,
		Transfers:       transfers,
	}
}
