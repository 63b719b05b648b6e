package models

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// Balance represents one person's net position.
type Balance struct {
	// Name identifies the person.
	Name string `json:"name"`

	// Amount is the net balance.
	// Positive = owed money, Negative = owes money, Zero = settled.
	Amount decimal.Decimal `json:"amount"`
}

// NewBalance builds a Balance.
func NewBalance(name string, amount decimal.Decimal) Balance {
	return Balance{Name: name, Amount: amount}
}

// IsSettled reports whether the balance is exactly zero.
func (b Balance) IsSettled() bool {
	return b.Amount.IsZero()
}

// MarshalJSON renders the amount as a plain JSON number.
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string      `json:"name"`
		Amount json.Number `json:"amount"`
	}{
		Name:   b.Name,
		Amount: json.Number(b.Amount.String()),
	})
}

// SortBalances orders balances by name in place.
// Aggregation returns balances in map order, so callers that need a
// reproducible output sort first.
func SortBalances(balances []Balance) {
	slices.SortFunc(balances, func(a, b Balance) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// TotalBalance sums all amounts. A balance set derived from a closed set of
// transfers always totals zero.
func TotalBalance(balances []Balance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Amount)
	}
	return total
}
