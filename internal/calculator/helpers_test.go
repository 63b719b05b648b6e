package calculator

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tr(from, to, amount string) models.Transfer {
	return models.NewTransfer(from, to, d(amount))
}

func bal(name, amount string) models.Balance {
	return models.NewBalance(name, d(amount))
}

// amounts flattens balances to name -> canonical amount string so that
// 30 and 30.0 compare equal.
func amounts(balances []models.Balance) map[string]string {
	m := make(map[string]string, len(balances))
	for _, b := range balances {
		m[b.Name] = b.Amount.String()
	}
	return m
}

// transferStrings renders transfers as "from->to:amount" in order.
func transferStrings(transfers []models.Transfer) []string {
	out := make([]string, len(transfers))
	for i, t := range transfers {
		out[i] = t.From + "->" + t.To + ":" + t.Amount.String()
	}
	return out
}

// randomTransfers generates n transfers between people p0..p(people-1)
// with amounts in whole cents.
func randomTransfers(rng *rand.Rand, n, people int) []models.Transfer {
	names := make([]string, people)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	transfers := make([]models.Transfer, n)
	for i := range transfers {
		transfers[i] = models.NewTransfer(
			names[rng.IntN(people)],
			names[rng.IntN(people)],
			decimal.New(rng.Int64N(100000), -2),
		)
	}
	return transfers
}
