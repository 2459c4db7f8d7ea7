package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retentionlab/knapsack/synth"
)

func TestGenerate_ProducesRequestedCount(t *testing.T) {
	records := synth.Generate(50, 1)
	require.Len(t, records, 50)

	for _, r := range records {
		require.NotNil(t, r.Age)
		assert.NotEmpty(t, r.JobRole)
	}
}

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	a := synth.Generate(20, 42)
	b := synth.Generate(20, 42)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, *a[i].Age, *b[i].Age)
		assert.Equal(t, a[i].JobRole, b[i].JobRole)
		assert.Equal(t, a[i].Attrition, b[i].Attrition)
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := synth.Generate(20, 1)
	b := synth.Generate(20, 2)

	differs := false
	for i := range a {
		if *a[i].Age != *b[i].Age {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}
