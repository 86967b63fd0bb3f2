package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostCache_IdempotentLookups(t *testing.T) {
	cache := NewCostCache()

	first, err := cache.GetFixedCosts(70000, 160000000, 80000000)
	require.NoError(t, err)
	second, err := cache.GetFixedCosts(70000, 160000000, 80000000)
	require.NoError(t, err)

	// Value equality is the contract; pointer reuse is how this cache
	// happens to satisfy it.
	assert.Equal(t, *first, *second)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCostCache_DistinctTriplesGetDistinctRecords(t *testing.T) {
	cache := NewCostCache()

	baseline, err := cache.GetFixedCosts(70000, 160000000, 80000000)
	require.NoError(t, err)
	premium, err := cache.GetFixedCosts(78000, 160000000, 95000000)
	require.NoError(t, err)

	assert.NotEqual(t, *baseline, *premium)
	assert.Equal(t, 2, cache.Len())
}

func TestCostCache_RejectsNonPositiveCosts(t *testing.T) {
	cache := NewCostCache()

	cases := []struct {
		name                              string
		salePrice, adminCost, advertising float64
	}{
		{"zero sale price", 0, 160000000, 80000000},
		{"negative admin cost", 70000, -1, 80000000},
		{"zero advertising cost", 70000, 160000000, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cache.GetFixedCosts(tt.salePrice, tt.adminCost, tt.advertising)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, 0, cache.Len())
}

func TestFixedCosts_SharedAcrossEvaluations(t *testing.T) {
	cache := NewCostCache()
	costs, err := cache.GetFixedCosts(70000, 160000000, 80000000)
	require.NoError(t, err)

	sample := Sample{LaborCost: 13000, ComponentCost: 30000, Demand: 14500}
	first := Profit(costs, sample)
	second := Profit(costs, sample)
	assert.Equal(t, first, second, "shared read-only costs must not drift between evaluations")
}
