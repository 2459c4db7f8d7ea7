package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retentionlab/knapsack/knapsack"
	"github.com/retentionlab/knapsack/store"
)

func TestMemoryStore_SaveAndListPredictions(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	_, err := s.SavePrediction(ctx, 1, 0.9, "high")
	require.NoError(t, err)
	_, err = s.SavePrediction(ctx, 2, 0.2, "low")
	require.NoError(t, err)

	all, err := s.ListPredictions(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	highOnly, err := s.ListPredictions(ctx, "high", 10)
	require.NoError(t, err)
	require.Len(t, highOnly, 1)
	assert.Equal(t, int64(1), highOnly[0].EmployeeID)
}

func TestMemoryStore_LatestSolve(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	_, err := s.LatestSolve(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	res := knapsack.Result{Status: knapsack.StatusOptimal, TotalValue: 70, SelectedIDs: []int64{2, 3}}
	id, err := s.SaveResult(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	latest, err := s.LatestSolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "optimal", latest.Status)
	assert.Equal(t, []int64{2, 3}, latest.SelectedIDs)
}
