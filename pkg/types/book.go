package types

import (
	"encoding/json"
	"strings"

	"github.com/bukuloka/storefront/pkg/enums"
)

// Book is the canonical catalog record every consumer sees. Backend revisions
// disagree on several field names (`writer` vs `author`, `stock` vs
// `stock_quantity`, genre as a string vs an object); all of that is folded
// into this one shape at decode time so the ambiguity never travels further.
type Book struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title"`
	Writer          string              `json:"writer"`
	Publisher       string              `json:"publisher,omitempty"`
	Price           Price               `json:"price"`
	Stock           int                 `json:"stock"`
	Genre           *Genre              `json:"genre,omitempty"`
	GenreID         int64               `json:"genreId,omitempty"`
	Condition       enums.BookCondition `json:"condition,omitempty"`
	PublicationYear int                 `json:"publicationYear,omitempty"`
	PublishDate     string              `json:"publishDate,omitempty"`
	Description     string              `json:"description,omitempty"`
	ISBN            string              `json:"isbn,omitempty"`
	CoverURL        string              `json:"coverUrl,omitempty"`
	CreatedAt       string              `json:"createdAt,omitempty"`
	UpdatedAt       string              `json:"updatedAt,omitempty"`
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID              FlexInt64       `json:"id"`
		Title           string          `json:"title"`
		Writer          string          `json:"writer"`
		Author          string          `json:"author"`
		Publisher       string          `json:"publisher"`
		Price           Price           `json:"price"`
		Stock           *FlexInt        `json:"stock"`
		StockQuantity   *FlexInt        `json:"stock_quantity"`
		Genre           json.RawMessage `json:"genre"`
		GenreID         FlexInt64       `json:"genreId"`
		Condition       string          `json:"condition"`
		PublicationYear FlexInt         `json:"publicationYear"`
		PublishDate     string          `json:"publishDate"`
		Description     string          `json:"description"`
		ISBN            string          `json:"isbn"`
		CoverURL        string          `json:"coverUrl"`
		CreatedAt       string          `json:"createdAt"`
		UpdatedAt       string          `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	b.ID = wire.ID.Int64()
	b.Title = wire.Title
	b.Writer = wire.Writer
	if b.Writer == "" {
		b.Writer = wire.Author
	}
	b.Publisher = wire.Publisher
	b.Price = wire.Price
	switch {
	case wire.Stock != nil:
		b.Stock = wire.Stock.Int()
	case wire.StockQuantity != nil:
		b.Stock = wire.StockQuantity.Int()
	default:
		b.Stock = 0
	}
	b.Genre = parseGenreField(wire.Genre)
	b.GenreID = wire.GenreID.Int64()
	if b.GenreID == 0 && b.Genre != nil {
		b.GenreID = b.Genre.ID
	}
	if cond, err := enums.ParseBookCondition(strings.TrimSpace(wire.Condition)); err == nil {
		b.Condition = cond
	}
	b.PublicationYear = wire.PublicationYear.Int()
	b.PublishDate = wire.PublishDate
	b.Description = wire.Description
	b.ISBN = wire.ISBN
	b.CoverURL = wire.CoverURL
	b.CreatedAt = wire.CreatedAt
	b.UpdatedAt = wire.UpdatedAt
	return nil
}

func parseGenreField(raw json.RawMessage) *Genre {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		if name == "" {
			return nil
		}
		return &Genre{Name: name}
	}
	var genre Genre
	if err := json.Unmarshal(raw, &genre); err == nil {
		return &genre
	}
	return nil
}
