package models

// Settlement is the result of minimizing the transfers needed to clear a set
// of balances.
type Settlement struct {
	// UpdatedBalances is the post-settlement state of every input balance,
	// sorted ascending by the amount each person started with.
	// Every entry is zero unless the input did not sum to zero.
	UpdatedBalances []Balance `json:"updatedBalances"`

	// Transfers is the settling sequence, in the order it was produced.
	Transfers []Transfer `json:"transactions"`
}

// EmptySettlement returns a settlement with empty, non-nil slices so it
// serializes as two empty JSON arrays.
func EmptySettlement() Settlement {
	return Settlement{
		UpdatedBalances: []Balance{},
		Transfers:       []Transfer{},
	}
}

// IsSettled reports whether every updated balance is zero.
func (s Settlement) IsSettled() bool {
	for _, b := range s.UpdatedBalances {
		if !b.IsSettled() {
			return false
		}
	}
	return true
}
