package types

import "encoding/json"

// Genre is the canonical category shape. Backend revisions send genre ids as
// numbers or strings and sometimes attach a Prisma-style `_count` block.
type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BookCount   int    `json:"bookCount,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID          FlexInt64 `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		BookCount   FlexInt   `json:"bookCount"`
		Count       *struct {
			Books FlexInt `json:"books"`
		} `json:"_count"`
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	g.ID = wire.ID.Int64()
	g.Name = wire.Name
	g.Description = wire.Description
	g.BookCount = wire.BookCount.Int()
	if wire.Count != nil {
		g.BookCount = wire.Count.Books.Int()
	}
	g.CreatedAt = wire.CreatedAt
	g.UpdatedAt = wire.UpdatedAt
	return nil
}
