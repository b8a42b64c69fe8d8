package cart

import "github.com/bukuloka/storefront/pkg/types"

// Catalog is the immutable snapshot of books fetched for the current page
// view. Line items resolve against it by book id; a book missing from the
// snapshot stays unresolved.
type Catalog struct {
	books []types.Book
	byID  map[int64]*types.Book
}

// NewCatalog builds a snapshot from the fetched book list. Books with a zero
// id cannot be referenced and are kept only for iteration.
func NewCatalog(books []types.Book) *Catalog {
	snapshot := &Catalog{
		books: make([]types.Book, len(books)),
		byID:  make(map[int64]*types.Book, len(books)),
	}
	copy(snapshot.books, books)
	for i := range snapshot.books {
		book := &snapshot.books[i]
		if book.ID != 0 {
			snapshot.byID[book.ID] = book
		}
	}
	return snapshot
}

// Lookup resolves a book id against the snapshot.
func (c *Catalog) Lookup(bookID int64) (*types.Book, bool) {
	if c == nil {
		return nil, false
	}
	book, ok := c.byID[bookID]
	return book, ok
}

// Books returns the snapshot contents in fetch order.
func (c *Catalog) Books() []types.Book {
	if c == nil {
		return nil
	}
	return c.books
}

// Empty reports whether the snapshot holds no books at all.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.books) == 0
}
