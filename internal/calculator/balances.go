package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// Tally is a running net total per person.
//
// Tallies are associative: tallying any partition of a transfer list and
// merging the partial tallies gives the same result as tallying the whole list.
type Tally map[string]decimal.Decimal

// NewTally returns an empty Tally.
func NewTally() Tally {
	return make(Tally)
}

func (t Tally) get(name string) decimal.Decimal {
	if amount, ok := t[name]; ok {
		return amount
	}
	return decimal.Zero
}

// Add folds one transfer into the tally.
// The payer is owed the amount back and the receiver owes it. A self-transfer
// only registers the person.
func (t Tally) Add(transfer models.Transfer) {
	if transfer.IsSelfTransfer() {
		t[transfer.From] = t.get(transfer.From)
		return
	}
	t[transfer.From] = t.get(transfer.From).Add(transfer.Amount)
	t[transfer.To] = t.get(transfer.To).Sub(transfer.Amount)
}

// Merge adds every entry of other into t, summing amounts of the same person.
func (t Tally) Merge(other Tally) {
	for name, amount := range other {
		t[name] = t.get(name).Add(amount)
	}
}

// Balances converts the tally to a balance list in map order.
func (t Tally) Balances() []models.Balance {
	balances := make([]models.Balance, 0, len(t))
	for name, amount := range t {
		balances = append(balances, models.NewBalance(name, amount))
	}
	return balances
}

// CalculateBalances computes the net balance of everyone involved in the
// transfers. Nil or empty input yields an empty list. The order of the result
// is unspecified; use models.SortBalances when it matters.
func CalculateBalances(transfers []models.Transfer) []models.Balance {
	tally := NewTally()
	for _, t := range transfers {
		tally.Add(t)
	}
	return tally.Balances()
}
