package types

import (
	"encoding/json"

	"github.com/bukuloka/storefront/pkg/enums"
)

// TransactionItem is one purchased line of a created transaction.
type TransactionItem struct {
	ID       int64 `json:"id,omitempty"`
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
	Price    Price `json:"price,omitempty"`
	Book     *Book `json:"book,omitempty"`
}

func (t *TransactionItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID          FlexInt64 `json:"id"`
		BookID      FlexInt64 `json:"bookId"`
		BookIDSnake FlexInt64 `json:"book_id"`
		Quantity    FlexInt   `json:"quantity"`
		Price       Price     `json:"price"`
		Book        *Book     `json:"book"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	t.ID = wire.ID.Int64()
	t.BookID = wire.BookID.Int64()
	if t.BookID == 0 {
		t.BookID = wire.BookIDSnake.Int64()
	}
	t.Quantity = wire.Quantity.Int()
	t.Price = wire.Price
	t.Book = wire.Book
	return nil
}

// Transaction is a created order as returned by the backend.
type Transaction struct {
	ID          int64                   `json:"id"`
	Items       []TransactionItem       `json:"items"`
	TotalAmount int                     `json:"totalAmount"`
	TotalPrice  Price                   `json:"totalPrice"`
	Status      enums.TransactionStatus `json:"status"`
	CreatedAt   string                  `json:"createdAt"`
	UpdatedAt   string                  `json:"updatedAt,omitempty"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID          FlexInt64         `json:"id"`
		Items       []TransactionItem `json:"items"`
		TotalAmount FlexInt           `json:"totalAmount"`
		TotalPrice  Price             `json:"totalPrice"`
		Status      string            `json:"status"`
		CreatedAt   string            `json:"createdAt"`
		UpdatedAt   string            `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	t.ID = wire.ID.Int64()
	t.Items = wire.Items
	t.TotalAmount = wire.TotalAmount.Int()
	t.TotalPrice = wire.TotalPrice
	if status, err := enums.ParseTransactionStatus(wire.Status); err == nil {
		t.Status = status
	}
	t.CreatedAt = wire.CreatedAt
	t.UpdatedAt = wire.UpdatedAt
	return nil
}
