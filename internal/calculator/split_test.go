package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.Item
		billTotal    decimal.Decimal
		billSubtotal decimal.Decimal
		participants []string
		wantErr      error
		validateFunc func(t *testing.T, splits map[string]*PersonSplit)
	}{
		{
			name: "simple two-person split with tax",
			items: []models.Item{
				{Description: "Pizza", Amount: d("20"), Participants: []string{"Alice", "Bob"}},
				{Description: "Salad", Amount: d("10"), Participants: []string{"Alice"}},
			},
			billTotal:    d("33"),
			billSubtotal: d("30"),
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				// Alice: subtotal = 10 + 10 = 20, tax = 20 * (3/30) = 2, total = 22
				// Bob: subtotal = 10, tax = 10 * (3/30) = 1, total = 11
				expectSplit(t, "Alice", splits["Alice"], "20", "2", "22")
				expectSplit(t, "Bob", splits["Bob"], "10", "1", "11")
			},
		},
		{
			name:         "zero subtotal should error",
			items:        []models.Item{{Description: "Item", Amount: d("10"), Participants: []string{"Alice"}}},
			billTotal:    d("10"),
			billSubtotal: decimal.Zero,
			participants: []string{"Alice"},
			wantErr:      ErrZeroSubtotal,
		},
		{
			name:         "no participants should error",
			items:        []models.Item{{Description: "Item", Amount: d("10"), Participants: []string{"Alice"}}},
			billTotal:    d("10"),
			billSubtotal: d("10"),
			participants: []string{},
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "no items - split equally among participants",
			items:        []models.Item{},
			billTotal:    d("33"),
			billSubtotal: d("30"),
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				for _, person := range []string{"Alice", "Bob"} {
					expectSplit(t, person, splits[person], "15", "1.5", "16.5")
				}
			},
		},
		{
			name:         "no items - uneven cents go to the first participants",
			billTotal:    d("10"),
			billSubtotal: d("10"),
			participants: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				expectSplit(t, "Alice", splits["Alice"], "3.34", "0", "3.34")
				expectSplit(t, "Bob", splits["Bob"], "3.33", "0", "3.33")
				expectSplit(t, "Charlie", splits["Charlie"], "3.33", "0", "3.33")
			},
		},
		{
			name: "shared item with proportional tip",
			items: []models.Item{
				{Description: "Wine", Amount: d("10"), Participants: []string{"Alice", "Bob", "Charlie"}},
			},
			billTotal:    d("12"),
			billSubtotal: d("10"),
			participants: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				expectSplit(t, "Alice", splits["Alice"], "3.34", "0.67", "4.01")
				expectSplit(t, "Bob", splits["Bob"], "3.33", "0.67", "4")
				expectSplit(t, "Charlie", splits["Charlie"], "3.33", "0.66", "3.99")
				expectSum(t, splits, "12")
			},
		},
		{
			name: "assignees outside the bill are ignored",
			items: []models.Item{
				{Description: "Soup", Amount: d("8"), Participants: []string{"Alice", "Mallory"}},
				{Description: "Bread", Amount: d("2"), Participants: []string{"Bob"}},
			},
			billTotal:    d("10"),
			billSubtotal: d("10"),
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				if _, ok := splits["Mallory"]; ok {
					t.Errorf("Mallory should not get a split")
				}
				expectSplit(t, "Alice", splits["Alice"], "8", "0", "8")
				expectSplit(t, "Bob", splits["Bob"], "2", "0", "2")
			},
		},
		{
			name:         "duplicate participants are counted once",
			billTotal:    d("9"),
			billSubtotal: d("9"),
			participants: []string{"Alice", "Bob", "Alice", "Charlie"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				if len(splits) != 3 {
					t.Fatalf("expected 3 splits, got %d", len(splits))
				}
				for _, person := range []string{"Alice", "Bob", "Charlie"} {
					expectSplit(t, person, splits[person], "3", "0", "3")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := CalculateSplit(tt.items, tt.billTotal, tt.billSubtotal, tt.participants)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CalculateSplit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && tt.validateFunc != nil {
				tt.validateFunc(t, splits)
			}
		})
	}
}

func TestSplitExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense models.Expense
		wantErr error
		want    []string
	}{
		{
			name: "payer shares the bill",
			expense: models.Expense{
				Payer:        "Alice",
				Total:        d("30"),
				Participants: []string{"Alice", "Bob", "Charlie"},
			},
			want: []string{"Alice->Alice:10", "Alice->Bob:10", "Alice->Charlie:10"},
		},
		{
			name: "payer outside the bill",
			expense: models.Expense{
				Payer:        "Dora",
				Total:        d("5"),
				Participants: []string{"Bob"},
			},
			want: []string{"Dora->Bob:5"},
		},
		{
			name:    "missing payer",
			expense: models.Expense{Total: d("5"), Participants: []string{"Bob"}},
			wantErr: ErrMissingPayer,
		},
		{
			name:    "no participants",
			expense: models.Expense{Payer: "Alice", Total: d("5")},
			wantErr: ErrNoParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfers, err := SplitExpense(tt.expense)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SplitExpense() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			got := transferStrings(transfers)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("transfer %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitExpense_FeedsAggregation(t *testing.T) {
	transfers, err := SplitExpense(models.Expense{
		Payer:        "Alice",
		Total:        d("10"),
		Participants: []string{"Alice", "Bob", "Charlie"},
	})
	if err != nil {
		t.Fatalf("SplitExpense() error = %v", err)
	}

	balances := amounts(CalculateBalances(transfers))

	// Alice keeps her own 3.34 share and is owed the rest.
	want := map[string]string{"Alice": "6.66", "Bob": "-3.33", "Charlie": "-3.33"}
	for name, amount := range want {
		if balances[name] != amount {
			t.Errorf("%s balance = %s, want %s", name, balances[name], amount)
		}
	}
}

func expectSplit(t *testing.T, person string, split *PersonSplit, subtotal, tax, total string) {
	t.Helper()
	if split == nil {
		t.Fatalf("%s has no split", person)
	}
	if !split.Subtotal.Equal(d(subtotal)) {
		t.Errorf("%s subtotal = %v, want %s", person, split.Subtotal, subtotal)
	}
	if !split.Tax.Equal(d(tax)) {
		t.Errorf("%s tax = %v, want %s", person, split.Tax, tax)
	}
	if !split.Total.Equal(d(total)) {
		t.Errorf("%s total = %v, want %s", person, split.Total, total)
	}
}

func expectSum(t *testing.T, splits map[string]*PersonSplit, total string) {
	t.Helper()
	sum := decimal.Zero
	for _, s := range splits {
		sum = sum.Add(s.Total)
	}
	if !sum.Equal(d(total)) {
		t.Errorf("split totals sum to %v, want %s", sum, total)
	}
}
