// Package pagination slices an already-filtered result set into fixed-size
// pages. It is a pure utility with no knowledge of HTTP or the database.
package pagination

// DefaultPageSize applies when a non-positive page size is requested.
const DefaultPageSize = 10

// Meta describes the position of a page within the full result set.
type Meta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// PrevPage returns the previous page number, floored at 1.
func (m Meta) PrevPage() int {
	if m.Page > 1 {
		return m.Page - 1
	}
	return 1
}

// NextPage returns the next page number, capped at the last page.
func (m Meta) NextPage() int {
	if m.Page < m.TotalPages {
		return m.Page + 1
	}
	return m.TotalPages
}

// Paginate returns the requested page of items plus page metadata.
//
// Page numbers below 1 clamp to the first page and numbers past the end
// clamp to the last page. An empty input yields a single empty page, so
// TotalPages is always at least 1.
func Paginate[T any](items []T, page, size int) ([]T, Meta) {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := 1
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	meta := Meta{
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalItems: total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	return items[start:end], meta
}
