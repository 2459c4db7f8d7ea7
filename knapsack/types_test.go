package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retentionlab/knapsack/knapsack"
)

func TestNewItem_EfficiencyDerivation(t *testing.T) {
	it := knapsack.NewItem(1, "Test", 50.0, 25.0, "Test")
	assert.InDelta(t, 0.5, it.Efficiency(), 1e-9)
}

func TestNewItem_ZeroCostEfficiency(t *testing.T) {
	it := knapsack.NewItem(1, "Test", 0.0, 10.0, "Test")
	assert.Equal(t, 0.0, it.Efficiency())
}

func TestNewInstance_RejectsEmptyItems(t *testing.T) {
	_, err := knapsack.NewInstance(nil, 100.0)
	require.ErrorIs(t, err, knapsack.ErrEmptyItems)
}

func TestNewInstance_RejectsNonPositiveBudget(t *testing.T) {
	items := []knapsack.Item{knapsack.NewItem(1, "A", 10, 5, "cat")}

	_, err := knapsack.NewInstance(items, 0)
	require.ErrorIs(t, err, knapsack.ErrInvalidBudget)

	_, err = knapsack.NewInstance(items, -1)
	require.ErrorIs(t, err, knapsack.ErrInvalidBudget)
}

func TestNewInstance_RejectsNegativeCostOrValue(t *testing.T) {
	_, err := knapsack.NewInstance([]knapsack.Item{knapsack.NewItem(1, "A", -1, 5, "cat")}, 10)
	require.ErrorIs(t, err, knapsack.ErrNegativeCost)

	_, err = knapsack.NewInstance([]knapsack.Item{knapsack.NewItem(1, "A", 1, -5, "cat")}, 10)
	require.ErrorIs(t, err, knapsack.ErrNegativeValue)
}

func TestNewInstance_RejectsDuplicateIDs(t *testing.T) {
	items := []knapsack.Item{
		knapsack.NewItem(1, "A", 10, 5, "cat"),
		knapsack.NewItem(1, "B", 20, 8, "cat"),
	}
	_, err := knapsack.NewInstance(items, 100)
	require.ErrorIs(t, err, knapsack.ErrDuplicateID)
}

func TestNewInstance_CanonicalOrder(t *testing.T) {
	// P1 efficiency 2.0, P2 efficiency 1.5, P3 efficiency 1.33.
	items := []knapsack.Item{
		knapsack.NewItem(2, "P2", 20.0, 30.0, "x"),
		knapsack.NewItem(1, "P1", 10.0, 20.0, "x"),
		knapsack.NewItem(3, "P3", 30.0, 40.0, "x"),
	}
	inst, err := knapsack.NewInstance(items, 50)
	require.NoError(t, err)

	got := inst.Items()
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID())
	assert.Equal(t, int64(2), got[1].ID())
	assert.Equal(t, int64(3), got[2].ID())

	// efficiency_order_invariant: non-increasing.
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Efficiency(), got[i-1].Efficiency())
	}
}

func TestNewInstance_TieBreakByID(t *testing.T) {
	// Two items with identical efficiency; lower id must sort first.
	items := []knapsack.Item{
		knapsack.NewItem(5, "B", 10.0, 10.0, "x"),
		knapsack.NewItem(2, "A", 10.0, 10.0, "x"),
	}
	inst, err := knapsack.NewInstance(items, 100)
	require.NoError(t, err)

	got := inst.Items()
	assert.Equal(t, int64(2), got[0].ID())
	assert.Equal(t, int64(5), got[1].ID())
}
