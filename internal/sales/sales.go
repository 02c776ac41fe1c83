// =============================================================================
// Compute Sales - Sales Record Module
// =============================================================================
//
// This module turns raw sale documents into typed entries and applies the
// quantity sign correction. The point-of-sale export occasionally carries
// negative quantities for returns that were keyed in backwards; the business
// rule is to count them as ordinary sales of the absolute quantity and flag
// the correction in the report.
//
// =============================================================================

package sales

import (
	"fmt"
	"math"

	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/shopspring/decimal"
)

// Sale records use the point-of-sale export's capitalized field names.
const (
	fieldProduct  = "Product"
	fieldQuantity = "Quantity"
)

// Entry is one typed sale line from a sales record file.
type Entry struct {
	// Product is the name the catalogue is searched for, matched exactly.
	Product string

	// Quantity is the number of units sold. FromDocument preserves the
	// recorded sign; Normalized applies the correction.
	Quantity decimal.Decimal
}

// FromDocument converts a raw sale document into an Entry.
//
// RETURNS an error when either required field is missing, has the wrong
// type, or carries a non-finite quantity. The aggregation layer reports
// such entries and moves on rather than aborting the file.
func FromDocument(doc docloader.Document) (Entry, error) {
	rawProduct, ok := doc[fieldProduct]
	if !ok {
		return Entry{}, fmt.Errorf("missing %q field", fieldProduct)
	}
	product, ok := docloader.NameString(rawProduct)
	if !ok {
		return Entry{}, fmt.Errorf("%q field is not a string", fieldProduct)
	}

	rawQuantity, ok := doc[fieldQuantity]
	if !ok {
		return Entry{}, fmt.Errorf("missing %q field", fieldQuantity)
	}
	quantity, ok := rawQuantity.(float64)
	if !ok {
		return Entry{}, fmt.Errorf("%q field is not a number", fieldQuantity)
	}
	// Decimal construction requires a finite value.
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Entry{}, fmt.Errorf("%q field is not a finite number", fieldQuantity)
	}

	return Entry{Product: product, Quantity: decimal.NewFromFloat(quantity)}, nil
}

// Normalized returns the entry with a non-negative quantity. The second
// return reports whether the sign had to be corrected.
func (e Entry) Normalized() (Entry, bool) {
	if e.Quantity.IsNegative() {
		return Entry{Product: e.Product, Quantity: e.Quantity.Abs()}, true
	}
	return e, false
}
