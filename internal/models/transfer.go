package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Transfer represents money moving from one person to another.
// In aggregation the payer (From) becomes owed the amount back and the
// receiver (To) owes it.
type Transfer struct {
	// From is the person who paid.
	From string `json:"from"`

	// To is the person who received the money.
	To string `json:"to"`

	// Amount is the transferred amount. It is expected to be non-negative
	// but is not validated.
	Amount decimal.Decimal `json:"amount"`
}

// NewTransfer builds a Transfer.
func NewTransfer(from, to string, amount decimal.Decimal) Transfer {
	return Transfer{From: from, To: to, Amount: amount}
}

// IsSelfTransfer reports whether the payer and the receiver are the same person.
func (t Transfer) IsSelfTransfer() bool {
	return t.From == t.To
}

// MarshalJSON renders the amount as a plain JSON number.
func (t Transfer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		From   string      `json:"from"`
		To     string      `json:"to"`
		Amount json.Number `json:"amount"`
	}{
		From:   t.From,
		To:     t.To,
		Amount: json.Number(t.Amount.String()),
	})
}
