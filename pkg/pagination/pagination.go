package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// Params holds page/limit pagination inputs for listing calls.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block the backend attaches to list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to the first page at minimum.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Normalize returns a copy of the params with page and limit clamped.
func (p Params) Normalize() Params {
	return Params{
		Page:  NormalizePage(p.Page),
		Limit: NormalizeLimit(p.Limit),
	}
}

// Apply writes the normalized page/limit pair onto query values.
func (p Params) Apply(query url.Values) {
	norm := p.Normalize()
	query.Set("page", strconv.Itoa(norm.Page))
	query.Set("limit", strconv.Itoa(norm.Limit))
}

// HasNext reports whether pages remain after the current one.
func (m Meta) HasNext() bool {
	return m.TotalPages > 0 && m.Page < m.TotalPages
}
