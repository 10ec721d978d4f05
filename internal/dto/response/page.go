// Package response holds the outward representations returned by the
// services: credential-free account views and paged listings.
package response

// PageInfo describes the position of a page within a listing
type PageInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// PagedResponse wraps one page of a listing with its position
type PagedResponse[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

// NewPagedResponse assembles a page from the items and the total count
// reported by the store. Items is never nil so listings serialize as
// an empty array rather than null.
func NewPagedResponse[T any](items []T, page, size int, total int64) PagedResponse[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int(total) / size
		if int(total)%size > 0 {
			totalPages++
		}
	}

	return PagedResponse[T]{
		Items: items,
		PageInfo: PageInfo{
			Page:       page,
			Size:       size,
			TotalItems: total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}
