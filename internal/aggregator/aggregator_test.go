package aggregator

import (
	"math"
	"testing"

	"github.com/ginjaninja78/compute-sales/internal/catalogue"
	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *catalogue.Index {
	return catalogue.BuildIndex([]docloader.Document{
		{"title": "Widget", "price": float64(10)},
		{"title": "Gadget", "price": float64(5)},
		{"title": "Refund Riser", "price": float64(-5)},
	})
}

func TestAggregateMatchedSales(t *testing.T) {
	res := Aggregate(testIndex(), []docloader.Document{
		{"Product": "Widget", "Quantity": float64(3)},
		{"Product": "Gadget", "Quantity": float64(2)},
	})

	assert.Equal(t, "40.00", res.TotalCost.StringFixed(2))
	assert.Empty(t, res.Warnings)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, "Widget", res.Lines[0].Product)
	assert.Equal(t, "3", res.Lines[0].Quantity.String())
	assert.Equal(t, "30.00", res.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", res.Lines[1].Subtotal.StringFixed(2))
}

func TestAggregateNegativeValues(t *testing.T) {
	t.Run("negative quantity is counted as positive", func(t *testing.T) {
		res := Aggregate(testIndex(), []docloader.Document{
			{"Product": "Widget", "Quantity": float64(-3)},
		})

		assert.Equal(t, "30.00", res.TotalCost.StringFixed(2))
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, WarnNegativeQuantity, res.Warnings[0].Kind)
		assert.Contains(t, res.Warnings[0].Message, "-3")
	})

	t.Run("negative price and quantity both corrected", func(t *testing.T) {
		res := Aggregate(testIndex(), []docloader.Document{
			{"Product": "Refund Riser", "Quantity": float64(-2)},
		})

		// abs(-5) * abs(-2)
		assert.Equal(t, "10.00", res.TotalCost.StringFixed(2))

		require.Len(t, res.Warnings, 2)
		assert.Equal(t, WarnNegativeQuantity, res.Warnings[0].Kind)
		assert.Equal(t, WarnNegativePrice, res.Warnings[1].Kind)

		require.Len(t, res.Lines, 1)
		assert.Equal(t, "5.00", res.Lines[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "2", res.Lines[0].Quantity.String())
	})
}

func TestAggregateUnmatchedProduct(t *testing.T) {
	res := Aggregate(testIndex(), []docloader.Document{
		{"Product": "Elder Wand", "Quantity": float64(4)},
	})

	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
	assert.Empty(t, res.Lines)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnProductNotFound, res.Warnings[0].Kind)
	assert.Equal(t, "Elder Wand", res.Warnings[0].Product)
}

func TestAggregateMalformedEntries(t *testing.T) {
	res := Aggregate(testIndex(), []docloader.Document{
		{"Quantity": float64(2)},
		{"Product": "Widget", "Quantity": "three"},
		{"Product": "Widget", "Quantity": float64(1)},
	})

	// The well-formed third entry still counts.
	assert.Equal(t, "10.00", res.TotalCost.StringFixed(2))
	require.Len(t, res.Lines, 1)

	require.Len(t, res.Warnings, 2)
	assert.Equal(t, WarnMalformedEntry, res.Warnings[0].Kind)
	assert.Contains(t, res.Warnings[0].Message, "entry 1")
	assert.Contains(t, res.Warnings[1].Message, "entry 2")
}

func TestAggregateNonFiniteValues(t *testing.T) {
	index := catalogue.BuildIndex([]docloader.Document{
		{"title": "Widget", "price": math.Inf(1)},
	})

	res := Aggregate(index, []docloader.Document{
		{"Product": "Widget", "Quantity": math.NaN()},
		{"Product": "Widget", "Quantity": float64(2)},
	})

	// The NaN quantity is a malformed entry; the infinite price indexed as
	// zero, so the remaining sale prices out at nothing.
	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
	require.Len(t, res.Lines, 1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnMalformedEntry, res.Warnings[0].Kind)
}

func TestAggregateMissingPriceCountsAsZero(t *testing.T) {
	index := catalogue.BuildIndex([]docloader.Document{
		{"title": "Freebie"},
	})

	res := Aggregate(index, []docloader.Document{
		{"Product": "Freebie", "Quantity": float64(7)},
	})

	// A catalogued product with no recorded price sells for nothing, which
	// is not a data problem worth warning about.
	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
	require.Len(t, res.Lines, 1)
	assert.Empty(t, res.Warnings)
}

func TestAggregateDecimalPrecision(t *testing.T) {
	index := catalogue.BuildIndex([]docloader.Document{
		{"title": "Stamp", "price": 0.1},
	})

	res := Aggregate(index, []docloader.Document{
		{"Product": "Stamp", "Quantity": float64(3)},
	})

	// 0.1 * 3 must come out as exactly 0.30, not 0.30000000000000004.
	assert.Equal(t, "0.3", res.TotalCost.String())
	assert.Equal(t, "0.30", res.TotalCost.StringFixed(2))
}

func TestAggregateEmptyFile(t *testing.T) {
	res := Aggregate(testIndex(), nil)

	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
	assert.Empty(t, res.Lines)
	assert.Empty(t, res.Warnings)
}

func TestAggregateIsRepeatable(t *testing.T) {
	docs := []docloader.Document{
		{"Product": "Widget", "Quantity": float64(3)},
		{"Product": "Elder Wand", "Quantity": float64(1)},
		{"Product": "Gadget", "Quantity": float64(-2)},
	}
	index := testIndex()

	first := Aggregate(index, docs)
	second := Aggregate(index, docs)

	assert.True(t, first.TotalCost.Equal(second.TotalCost))
	require.Equal(t, len(first.Lines), len(second.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].Product, second.Lines[i].Product)
		assert.True(t, first.Lines[i].Subtotal.Equal(second.Lines[i].Subtotal))
	}
	assert.Equal(t, len(first.Warnings), len(second.Warnings))
}

func TestAggregateNegatedInputsMatchPositive(t *testing.T) {
	positive := Aggregate(testIndex(), []docloader.Document{
		{"Product": "Widget", "Quantity": float64(3)},
		{"Product": "Gadget", "Quantity": float64(2)},
	})
	negated := Aggregate(testIndex(), []docloader.Document{
		{"Product": "Widget", "Quantity": float64(-3)},
		{"Product": "Gadget", "Quantity": float64(-2)},
	})

	// Sign correction makes negated quantities price out identically; only
	// the warnings differ.
	assert.True(t, positive.TotalCost.Equal(negated.TotalCost))
	assert.Empty(t, positive.Warnings)
	assert.Len(t, negated.Warnings, 2)

	negatedPrices := catalogue.BuildIndex([]docloader.Document{
		{"title": "Widget", "price": float64(-10)},
		{"title": "Gadget", "price": float64(-5)},
	})
	res := Aggregate(negatedPrices, []docloader.Document{
		{"Product": "Widget", "Quantity": float64(3)},
		{"Product": "Gadget", "Quantity": float64(2)},
	})
	assert.True(t, positive.TotalCost.Equal(res.TotalCost))
}
