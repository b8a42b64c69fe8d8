package cart

import "github.com/google/uuid"

// LineItem is one (book, quantity) pairing in the cart. LocalID is a stable
// identity for list operations on the display side and is never sent to the
// backend. BookID zero means no book has been selected yet.
type LineItem struct {
	LocalID  string
	BookID   int64
	Quantity int
}

// Selected reports whether the item references a book.
func (li LineItem) Selected() bool {
	return li.BookID != 0
}

// Patch carries partial changes for UpdateItem. Nil fields are left untouched.
type Patch struct {
	BookID   *int64
	Quantity *int
}

// Cart is an ordered list of line items. Insertion order is significant: it
// drives "Item #N" display and submission order. Mutations bump a version so
// summaries can be memoized against it.
type Cart struct {
	items   []LineItem
	version uint64
}

// New returns a cart holding a single unselected line with quantity one, the
// state a fresh checkout page starts in.
func New() *Cart {
	c := &Cart{}
	c.AddItem()
	return c
}

// NewSeeded returns a cart whose first line already references the given book,
// as when checkout is entered from a book's detail page.
func NewSeeded(bookID int64) *Cart {
	c := New()
	c.items[0].BookID = bookID
	c.version++
	return c
}

// AddItem appends a fresh unselected line with quantity one and returns it.
// Always succeeds.
func (c *Cart) AddItem() LineItem {
	item := LineItem{
		LocalID:  uuid.NewString(),
		Quantity: 1,
	}
	c.items = append(c.items, item)
	c.version++
	return item
}

// UpdateItem applies the patch to the item at index, preserving its LocalID.
// Quantity is stored as given, including zero and negatives; rejection happens
// at submit time, not here. An out-of-range index is a programming error and
// panics.
func (c *Cart) UpdateItem(index int, patch Patch) {
	item := &c.items[index]
	if patch.BookID != nil {
		item.BookID = *patch.BookID
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	c.version++
}

// RemoveItem deletes the item at index. The cart may reach zero items; any
// minimum is display policy, not enforced here. An out-of-range index panics.
func (c *Cart) RemoveItem(index int) {
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.version++
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Version increases on every mutation.
func (c *Cart) Version() uint64 {
	return c.version
}

// Reset discards all items and returns the cart to its initial single blank
// line. Used after a successful submission.
func (c *Cart) Reset() {
	c.items = c.items[:0]
	c.AddItem()
}
