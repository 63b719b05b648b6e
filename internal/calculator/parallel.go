package calculator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/settleup/internal/models"
)

type chunk struct {
	start, end int
}

// partition splits n items into at most parts contiguous chunks.
func partition(n, parts int) []chunk {
	if n == 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	chunks := make([]chunk, 0, parts)
	for start := 0; start < n; start += size {
		chunks = append(chunks, chunk{start: start, end: min(start+size, n)})
	}
	return chunks
}

// CalculateBalancesParallel is CalculateBalances spread over a bounded pool of
// workers. Each worker tallies one contiguous chunk of transfers and the partial
// tallies are merged once every chunk is done.
func CalculateBalancesParallel(ctx context.Context, transfers []models.Transfer, workers int) ([]models.Balance, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	chunks := partition(len(transfers), workers)
	partials := make([]Tally, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tally := NewTally()
			for _, t := range transfers[c.start:c.end] {
				tally.Add(t)
			}
			partials[i] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate transfers: %w", err)
	}

	merged := NewTally()
	for _, p := range partials {
		merged.Merge(p)
	}
	return merged.Balances(), nil
}
