package calculator

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/models"
)

func TestCalculateBalancesParallel(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	transfers := randomTransfers(rng, 1000, 12)
	expected := amounts(CalculateBalances(transfers))

	for _, workers := range []int{1, 2, 3, 7, 16, 2000} {
		actual, err := CalculateBalancesParallel(context.Background(), transfers, workers)

		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, expected, amounts(actual), "workers=%d", workers)
	}
}

func TestCalculateBalancesParallel_EmptyInput(t *testing.T) {
	actual, err := CalculateBalancesParallel(context.Background(), nil, 4)

	require.NoError(t, err)
	assert.NotNil(t, actual)
	assert.Empty(t, actual)
}

func TestCalculateBalancesParallel_InvalidWorkers(t *testing.T) {
	_, err := CalculateBalancesParallel(context.Background(), []models.Transfer{tr("A", "B", "1")}, 0)

	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestCalculateBalancesParallel_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CalculateBalancesParallel(ctx, []models.Transfer{tr("A", "B", "1"), tr("B", "C", "2")}, 2)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []chunk
	}{
		{name: "even", n: 4, parts: 2, want: []chunk{{0, 2}, {2, 4}}},
		{name: "uneven", n: 5, parts: 2, want: []chunk{{0, 3}, {3, 5}}},
		{name: "more parts than items", n: 2, parts: 8, want: []chunk{{0, 1}, {1, 2}}},
		{name: "empty", n: 0, parts: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partition(tt.n, tt.parts))
		})
	}
}
