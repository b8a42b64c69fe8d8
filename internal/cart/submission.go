package cart

import pkgerrors "github.com/bukuloka/storefront/pkg/errors"

// SubmissionItem is one normalized line of the order payload. LocalID and all
// derived fields are dropped here.
type SubmissionItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// BuildSubmission filters the cart to lines with a selected book and positive
// quantity and maps them to the backend payload shape, preserving order. A
// ValidationError is returned when nothing survives the filter; the caller
// must not call the backend in that case.
func BuildSubmission(c *Cart) ([]SubmissionItem, error) {
	items := make([]SubmissionItem, 0, c.Len())
	for _, item := range c.Items() {
		if !item.Selected() || item.Quantity <= 0 {
			continue
		}
		items = append(items, SubmissionItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "select at least one book with a quantity above zero")
	}
	return items, nil
}
