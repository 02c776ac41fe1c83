// =============================================================================
// Compute Sales - Cost Aggregation Module
// =============================================================================
//
// This module computes the cost of one sales record file against a catalogue
// index. It is a pure function over its inputs: all money math runs on
// decimal values, and every data problem becomes a typed warning instead of
// aborting the file.
//
// AGGREGATION RULES:
//   - Malformed entries are skipped with a warning.
//   - Negative quantities and negative catalogue prices are counted with
//     their absolute values, each flagged with a warning.
//   - Entries whose product is not in the catalogue contribute nothing to
//     the total and produce a warning.
//
// =============================================================================

package aggregator

import (
	"fmt"

	"github.com/ginjaninja78/compute-sales/internal/catalogue"
	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/ginjaninja78/compute-sales/internal/sales"
	"github.com/shopspring/decimal"
)

// =============================================================================
// WARNINGS
// =============================================================================

// Kind classifies the data problems aggregation can encounter.
type Kind string

const (
	WarnNegativeQuantity Kind = "negative-quantity"
	WarnNegativePrice    Kind = "negative-price"
	WarnProductNotFound  Kind = "product-not-found"
	WarnMalformedEntry   Kind = "malformed-entry"
)

// Warning records one non-fatal data problem found during aggregation.
type Warning struct {
	// Kind classifies the problem.
	Kind Kind

	// Product is the product name involved, when one was available.
	Product string

	// Message is the human-readable description printed in the report.
	Message string
}

// =============================================================================
// RESULTS
// =============================================================================

// LineResult is the priced outcome of one matched sale entry.
type LineResult struct {
	// Product is the matched product name.
	Product string

	// Quantity is the sign-corrected number of units.
	Quantity decimal.Decimal

	// UnitPrice is the sign-corrected catalogue price.
	UnitPrice decimal.Decimal

	// Subtotal is UnitPrice multiplied by Quantity.
	Subtotal decimal.Decimal
}

// Result is the outcome of aggregating one sales record file.
type Result struct {
	// Lines holds one priced line per matched sale entry, in input order.
	Lines []LineResult

	// TotalCost is the sum of all line subtotals.
	TotalCost decimal.Decimal

	// Warnings lists the data problems encountered, in discovery order.
	Warnings []Warning
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Aggregate prices every sale entry in docs against the catalogue index.
//
// PARAMETERS:
//   - index: The catalogue index to price against.
//   - docs: The raw sale documents from one sales record file.
//
// RETURNS the priced lines, the file total and the warnings collected along
// the way. Aggregate never fails: a file with no usable entries simply
// produces a zero total.
func Aggregate(index *catalogue.Index, docs []docloader.Document) Result {
	var res Result

	for i, doc := range docs {
		entry, err := sales.FromDocument(doc)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarnMalformedEntry,
				Message: fmt.Sprintf("skipping malformed sale entry %d: %v", i+1, err),
			})
			continue
		}

		norm, corrected := entry.Normalized()
		if corrected {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarnNegativeQuantity,
				Product: norm.Product,
				Message: fmt.Sprintf("sale of %q has negative quantity %s; using absolute value", entry.Product, entry.Quantity),
			})
		}

		quote, found := index.Lookup(norm.Product)
		if !found {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarnProductNotFound,
				Product: norm.Product,
				Message: fmt.Sprintf("product %q not found in catalogue; sale skipped", norm.Product),
			})
			continue
		}
		if quote.SignCorrected {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarnNegativePrice,
				Product: norm.Product,
				Message: fmt.Sprintf("catalogue price for %q is negative; using absolute value", norm.Product),
			})
		}

		subtotal := quote.Amount.Mul(norm.Quantity)
		res.Lines = append(res.Lines, LineResult{
			Product:   norm.Product,
			Quantity:  norm.Quantity,
			UnitPrice: quote.Amount,
			Subtotal:  subtotal,
		})
		res.TotalCost = res.TotalCost.Add(subtotal)
	}

	return res
}
