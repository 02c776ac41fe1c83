// =============================================================================
// Compute Sales - Price Catalogue Module
// =============================================================================
//
// This module builds the in-memory price index that sale entries are priced
// against. The catalogue file is an export of product records; only the
// "title" and "price" fields matter here, everything else a record carries
// is ignored.
//
// INDEXING RULES:
//   - Records without a usable "title" name can never match a sale and are
//     skipped. Numeric spreadsheet cells ("1984") index under their
//     canonical rendering, matching their JSON string form.
//   - A missing, non-numeric or non-finite "price" is indexed as 0, so one
//     bad field never blocks the rest of the catalogue.
//   - Duplicate titles keep the first price encountered. Upstream exports
//     append superseded records after the current one, so the first record
//     for a title is the authoritative one.
//
// =============================================================================

package catalogue

import (
	"math"

	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/shopspring/decimal"
)

// Catalogue records use the web store's lowercase field names.
const (
	fieldTitle = "title"
	fieldPrice = "price"
)

// Quote is the unit price returned by a catalogue lookup.
type Quote struct {
	// Amount is the non-negative unit price.
	Amount decimal.Decimal

	// SignCorrected reports that the recorded price was negative and its
	// sign was flipped for this quote.
	SignCorrected bool
}

// Index maps product titles to their recorded prices.
type Index struct {
	prices map[string]decimal.Decimal
}

// BuildIndex indexes catalogue documents by title.
//
// PARAMETERS:
//   - docs: The raw catalogue documents, in file order.
//
// RETURNS an index holding one price per distinct title. Unusable records
// are dropped; an empty or fully unusable catalogue yields an empty index,
// which prices nothing but is not an error.
func BuildIndex(docs []docloader.Document) *Index {
	index := &Index{prices: make(map[string]decimal.Decimal, len(docs))}

	for _, doc := range docs {
		title, ok := docloader.NameString(doc[fieldTitle])
		if !ok {
			continue
		}
		if _, exists := index.prices[title]; exists {
			continue
		}

		price := 0.0
		if v, ok := doc[fieldPrice].(float64); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			price = v
		}
		index.prices[title] = decimal.NewFromFloat(price)
	}

	return index
}

// Lookup returns the quote for a product title. The recorded price is kept
// as-is in the index; a negative price is corrected to its absolute value
// here, flagged on the quote so the caller can report it.
func (ix *Index) Lookup(title string) (Quote, bool) {
	price, ok := ix.prices[title]
	if !ok {
		return Quote{}, false
	}

	if price.IsNegative() {
		return Quote{Amount: price.Abs(), SignCorrected: true}, true
	}
	return Quote{Amount: price}, true
}

// Len returns the number of distinct titles in the index.
func (ix *Index) Len() int {
	return len(ix.prices)
}
