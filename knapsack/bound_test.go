package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeItemInstance builds the canonical P1(10,20)/P2(20,30)/P3(30,40)
// budget-50 instance used throughout the bound and scenario tests.
func threeItemInstance(t *testing.T) *Instance {
	t.Helper()
	items := []Item{
		NewItem(1, "P1", 10.0, 20.0, "x"),
		NewItem(2, "P2", 20.0, 30.0, "x"),
		NewItem(3, "P3", 30.0, 40.0, "x"),
	}
	inst, err := NewInstance(items, 50.0)
	require.NoError(t, err)

	return inst
}

func TestBound_RootIncludesFractionalThirdItem(t *testing.T) {
	inst := threeItemInstance(t)
	got := bound(inst, 0, 0, 0)
	assert.InDelta(t, 76.67, got, 0.01)
}

func TestBound_PostSelectionSameResidualValue(t *testing.T) {
	inst := threeItemInstance(t)
	// P1 already taken: level 1, cost 10, value 20.
	got := bound(inst, 1, 10, 20)
	assert.InDelta(t, 76.67, got, 0.01)
}

func TestBound_ExhaustedBudgetIsExact(t *testing.T) {
	inst := threeItemInstance(t)
	// All items decided (level == N): no residual item to fractionally add,
	// bound degenerates to the accumulated value exactly.
	got := bound(inst, inst.N(), 50, 90)
	assert.Equal(t, 90.0, got)
}

func TestBound_NegativeResidualReturnsAccumulatedValueOnly(t *testing.T) {
	inst := threeItemInstance(t)
	got := bound(inst, 1, 60, 20)
	assert.Equal(t, 20.0, got)
}
