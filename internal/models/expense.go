package models

import "github.com/shopspring/decimal"

// Expense represents a shared bill paid by one person.
// It is expanded into transfers from the payer to each participant.
type Expense struct {
	// Payer is the person who paid the full bill.
	Payer string `json:"payer"`

	// Total is the final bill amount including tax, tips, and fees.
	Total decimal.Decimal `json:"total"`

	// Subtotal is the pre-tax amount (sum of all items before tax).
	// Only used when Items is non-empty.
	Subtotal decimal.Decimal `json:"subtotal"`

	// Participants is the list of people splitting the bill.
	// The payer is usually one of them but does not have to be.
	Participants []string `json:"participants"`

	// Items are the individual line items on the bill.
	// When empty the total is split equally among all participants.
	Items []Item `json:"items,omitempty"`
}

// Item represents a single line item on a bill.
// Items can be shared among multiple participants.
type Item struct {
	// Description is the name or description of the item (e.g., "Pizza", "Beer").
	Description string `json:"description"`

	// Amount is the pre-tax price of this item.
	Amount decimal.Decimal `json:"amount"`

	// Participants is the list of people who should split this item.
	// If multiple people are assigned, the item is split equally among them.
	Participants []string `json:"participants"`
}
