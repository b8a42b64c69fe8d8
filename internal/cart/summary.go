package cart

import (
	"github.com/bukuloka/storefront/pkg/types"
	"github.com/shopspring/decimal"
)

// EnrichedItem is a line item joined with its resolved book. Book is nil when
// the reference did not resolve against the snapshot; such items are excluded
// from every aggregate and WithinStock is vacuously true.
type EnrichedItem struct {
	LineItem
	Book        *types.Book
	WithinStock bool
}

// Included reports whether the item counts toward totals: a resolved book and
// a positive quantity.
func (e EnrichedItem) Included() bool {
	return e.Book != nil && e.Quantity > 0
}

// Summary holds the derived aggregates for a (cart, catalog) pair.
type Summary struct {
	Items             []EnrichedItem
	TotalQuantity     int
	TotalPrice        decimal.Decimal
	HasStockViolation bool
}

// ComputeSummary derives the cart aggregates against the catalog snapshot.
// Pure: same inputs always yield the same summary, nothing is mutated. Totals
// cover exactly the items with a resolved book and quantity > 0; a stock
// violation flags the summary but never suppresses the computed totals.
func ComputeSummary(c *Cart, catalog *Catalog) Summary {
	summary := Summary{
		Items:      make([]EnrichedItem, 0, c.Len()),
		TotalPrice: decimal.Zero,
	}

	for _, item := range c.Items() {
		enriched := EnrichedItem{LineItem: item, WithinStock: true}
		if book, ok := catalog.Lookup(item.BookID); ok {
			enriched.Book = book
			enriched.WithinStock = item.Quantity <= book.Stock
		}
		summary.Items = append(summary.Items, enriched)

		if !enriched.Included() {
			continue
		}
		summary.TotalQuantity += enriched.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(
			enriched.Book.Price.Decimal().Mul(decimal.NewFromInt(int64(enriched.Quantity))),
		)
		if !enriched.WithinStock {
			summary.HasStockViolation = true
		}
	}

	return summary
}
