package sales

import (
	"math"
	"testing"

	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDocument(t *testing.T) {
	t.Run("well-formed entry", func(t *testing.T) {
		entry, err := FromDocument(docloader.Document{
			"Product":  "Widget",
			"Quantity": float64(3),
		})

		require.NoError(t, err)
		assert.Equal(t, "Widget", entry.Product)
		assert.Equal(t, "3", entry.Quantity.String())
	})

	t.Run("negative quantity is preserved", func(t *testing.T) {
		entry, err := FromDocument(docloader.Document{
			"Product":  "Widget",
			"Quantity": float64(-2),
		})

		require.NoError(t, err)
		assert.Equal(t, "-2", entry.Quantity.String())
	})

	t.Run("fractional quantity", func(t *testing.T) {
		entry, err := FromDocument(docloader.Document{
			"Product":  "Rope",
			"Quantity": 2.5,
		})

		require.NoError(t, err)
		assert.Equal(t, "2.5", entry.Quantity.String())
	})

	t.Run("numeric product name from a spreadsheet cell", func(t *testing.T) {
		entry, err := FromDocument(docloader.Document{
			"Product":  float64(1984),
			"Quantity": float64(2),
		})

		require.NoError(t, err)
		assert.Equal(t, "1984", entry.Product)
	})

	malformed := []struct {
		name string
		doc  docloader.Document
	}{
		{"missing Product", docloader.Document{"Quantity": float64(1)}},
		{"non-string Product", docloader.Document{"Product": true, "Quantity": float64(1)}},
		{"missing Quantity", docloader.Document{"Product": "Widget"}},
		{"non-numeric Quantity", docloader.Document{"Product": "Widget", "Quantity": "three"}},
		{"NaN Quantity", docloader.Document{"Product": "Widget", "Quantity": math.NaN()}},
		{"infinite Quantity", docloader.Document{"Product": "Widget", "Quantity": math.Inf(1)}},
	}

	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromDocument(tc.doc)
			assert.Error(t, err)
		})
	}
}

func TestNormalized(t *testing.T) {
	t.Run("negative quantity is corrected", func(t *testing.T) {
		entry := Entry{Product: "Widget", Quantity: decimal.NewFromInt(-2)}

		norm, corrected := entry.Normalized()
		assert.True(t, corrected)
		assert.Equal(t, "2", norm.Quantity.String())
	})

	t.Run("non-negative quantity is unchanged", func(t *testing.T) {
		entry := Entry{Product: "Widget", Quantity: decimal.NewFromInt(4)}

		norm, corrected := entry.Normalized()
		assert.False(t, corrected)
		assert.Equal(t, "4", norm.Quantity.String())
	})

	t.Run("zero is not a correction", func(t *testing.T) {
		entry := Entry{Product: "Widget", Quantity: decimal.Zero}

		_, corrected := entry.Normalized()
		assert.False(t, corrected)
	})

	t.Run("normalizing twice changes nothing", func(t *testing.T) {
		entry := Entry{Product: "Widget", Quantity: decimal.NewFromInt(-3)}

		once, _ := entry.Normalized()
		twice, corrected := once.Normalized()
		assert.False(t, corrected)
		assert.Equal(t, once.Quantity.String(), twice.Quantity.String())
	})
}
