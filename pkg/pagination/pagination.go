package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPageSize is applied when the caller does not ask for a size.
	DefaultPageSize = 10
	// MaxPageSize caps how many records a single page may return.
	MaxPageSize = 50
)

// Params carries normalized page-number pagination inputs.
type Params struct {
	Page     int
	PageSize int
}

// FromRequest reads page and page_size query parameters, falling back to the
// defaults on missing or malformed values.
func FromRequest(r *http.Request, defaultSize, maxSize int) Params {
	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	size := parsePositiveInt(r.URL.Query().Get("page_size"), defaultSize)
	return Normalize(Params{Page: page, PageSize: size}, defaultSize, maxSize)
}

// Normalize clamps the params into the allowed range.
func Normalize(p Params, defaultSize, maxSize int) Params {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset returns the record offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta summarizes a paged result set for response envelopes.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta derives page counts from a total row count.
func NewMeta(p Params, total int64) Meta {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return Meta{
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: pages,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
