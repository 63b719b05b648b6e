package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// centPlaces is the precision shares are rounded to.
const centPlaces = 2

// PersonSplit represents the calculated split for one person
type PersonSplit struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateSplit computes how much each person owes including proportional tax.
// Each person's total is their item subtotal scaled by billTotal / billSubtotal.
// Without items the bill is split equally.
//
// Shares are whole cents and always add up exactly to billTotal: every share is
// truncated and the leftover cents go to participants in order.
func CalculateSplit(items []models.Item, billTotal, billSubtotal decimal.Decimal, participants []string) (map[string]*PersonSplit, error) {
	people := uniqueNames(participants)
	if len(people) == 0 {
		return nil, ErrNoParticipants
	}
	if len(items) > 0 && billSubtotal.IsZero() {
		return nil, ErrZeroSubtotal
	}

	subtotals := make([]decimal.Decimal, len(people))
	if len(items) == 0 {
		subtotals = allocate(billSubtotal, equalWeights(len(people)))
	} else {
		index := make(map[string]int, len(people))
		for i, p := range people {
			index[p] = i
			subtotals[i] = decimal.Zero
		}

		for _, item := range items {
			// Only assignees that take part in the bill share the item
			var assigned []int
			for _, name := range uniqueNames(item.Participants) {
				if i, ok := index[name]; ok {
					assigned = append(assigned, i)
				}
			}
			if len(assigned) == 0 {
				continue
			}

			for k, share := range allocate(item.Amount, equalWeights(len(assigned))) {
				subtotals[assigned[k]] = subtotals[assigned[k]].Add(share)
			}
		}
	}

	totals := allocate(billTotal, subtotals)

	splits := make(map[string]*PersonSplit, len(people))
	for i, p := range people {
		splits[p] = &PersonSplit{
			Subtotal: subtotals[i],
			Tax:      totals[i].Sub(subtotals[i]),
			Total:    totals[i],
		}
	}
	return splits, nil
}

// SplitExpense expands a shared expense into transfers from the payer to each
// participant for that participant's share. The payer's own share becomes a
// self-transfer, which registers the payer without moving money.
func SplitExpense(expense models.Expense) ([]models.Transfer, error) {
	if expense.Payer == "" {
		return nil, ErrMissingPayer
	}

	splits, err := CalculateSplit(expense.Items, expense.Total, expense.Subtotal, expense.Participants)
	if err != nil {
		return nil, err
	}

	people := uniqueNames(expense.Participants)
	transfers := make([]models.Transfer, 0, len(people))
	for _, p := range people {
		transfers = append(transfers, models.NewTransfer(expense.Payer, p, splits[p].Total))
	}
	return transfers, nil
}

// allocate divides total proportionally to weights in whole cents.
// Shares sum exactly to total. Zero weights everywhere fall back to an equal
// split.
func allocate(total decimal.Decimal, weights []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(weights))
	if len(weights) == 0 {
		return shares
	}

	sum := decimal.Sum(decimal.Zero, weights...)
	if sum.IsZero() {
		weights = equalWeights(len(weights))
		sum = decimal.NewFromInt(int64(len(weights)))
	}

	allocated := decimal.Zero
	for i, w := range weights {
		shares[i] = total.Mul(w).Div(sum).Truncate(centPlaces)
		allocated = allocated.Add(shares[i])
	}

	cent := decimal.New(1, -centPlaces)
	remainder := total.Sub(allocated)
	if remainder.IsNegative() {
		cent = cent.Neg()
	}
	for i := 0; remainder.Abs().GreaterThanOrEqual(cent.Abs()); i = (i + 1) % len(shares) {
		shares[i] = shares[i].Add(cent)
		remainder = remainder.Sub(cent)
	}
	// Sub-cent leftovers only happen when total itself is finer than a cent.
	shares[0] = shares[0].Add(remainder)

	return shares
}

func equalWeights(n int) []decimal.Decimal {
	weights := make([]decimal.Decimal, n)
	for i := range weights {
		weights[i] = decimal.NewFromInt(1)
	}
	return weights
}

// uniqueNames drops empty and repeated names, keeping the first occurrence.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}
	return unique
}
