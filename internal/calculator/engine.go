package calculator

import (
	"context"

	"github.com/mmynk/settleup/internal/models"
)

// Engine bundles the calculator operations behind one value shared by every
// transport. It decides when aggregation is large enough to be worth running
// on several workers.
type Engine struct {
	workers           int
	parallelThreshold int
}

// NewEngine creates an Engine. Aggregation runs on workers goroutines once the
// input reaches parallelThreshold transfers; a threshold of 0 or a single
// worker keeps it sequential.
func NewEngine(workers, parallelThreshold int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		workers:           workers,
		parallelThreshold: parallelThreshold,
	}
}

// Parallel reports whether n transfers would be aggregated in parallel.
func (e *Engine) Parallel(n int) bool {
	return e.workers > 1 && e.parallelThreshold > 0 && n >= e.parallelThreshold
}

// Balances aggregates transfers into net balances, sorted by name so that
// the same transfers always give the same list.
func (e *Engine) Balances(ctx context.Context, transfers []models.Transfer) ([]models.Balance, error) {
	var balances []models.Balance
	if e.Parallel(len(transfers)) {
		var err error
		balances, err = CalculateBalancesParallel(ctx, transfers, e.workers)
		if err != nil {
			return nil, err
		}
	} else {
		balances = CalculateBalances(transfers)
	}
	models.SortBalances(balances)
	return balances, nil
}

// Minimize computes the settling transfers for a balance set.
func (e *Engine) Minimize(balances []models.Balance) models.Settlement {
	return MinimizeTransfers(balances)
}

// Settle aggregates transfers and minimizes the resulting balances.
// It returns the intermediate balances as well as the settlement. Balances
// reach the minimizer in name order, so ties always pair the same way.
func (e *Engine) Settle(ctx context.Context, transfers []models.Transfer) ([]models.Balance, models.Settlement, error) {
	balances, err := e.Balances(ctx, transfers)
	if err != nil {
		return nil, models.Settlement{}, err
	}
	return balances, e.Minimize(balances), nil
}

// Split expands a shared expense into transfers.
func (e *Engine) Split(expense models.Expense) ([]models.Transfer, error) {
	return SplitExpense(expense)
}
