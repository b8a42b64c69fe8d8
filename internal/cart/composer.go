package cart

// Composer binds a cart to its catalog snapshot and memoizes the derived
// summary on the cart version. All mutations are synchronous; the memo is
// invalidated purely by version comparison.
type Composer struct {
	cart    *Cart
	catalog *Catalog

	memoVersion uint64
	memoValid   bool
	memo        Summary
}

// NewComposer wires an existing cart to a catalog snapshot.
func NewComposer(c *Cart, catalog *Catalog) *Composer {
	if c == nil {
		c = New()
	}
	return &Composer{cart: c, catalog: catalog}
}

// Cart exposes the underlying cart for mutations.
func (cp *Composer) Cart() *Cart {
	return cp.cart
}

// Catalog exposes the bound snapshot.
func (cp *Composer) Catalog() *Catalog {
	return cp.catalog
}

// Summary returns the memoized aggregates, recomputing only when the cart has
// mutated since the last call.
func (cp *Composer) Summary() Summary {
	if cp.memoValid && cp.memoVersion == cp.cart.Version() {
		return cp.memo
	}
	cp.memo = ComputeSummary(cp.cart, cp.catalog)
	cp.memoVersion = cp.cart.Version()
	cp.memoValid = true
	return cp.memo
}

// Reset discards the cart contents after a successful submission and drops
// the memo.
func (cp *Composer) Reset() {
	cp.cart.Reset()
	cp.memoValid = false
}
