package dto

import "math"

// PagedResult is the response envelope for paginated listings.
type PagedResult[T any] struct {
	Items           []T   `json:"items"`
	PageNumber      int   `json:"pageNumber"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

// NewPagedResult derives the pagination metadata from the page parameters
// and the total match count. totalCount always reflects the full filtered
// result set, not the page.
func NewPagedResult[T any](items []T, pageNumber, pageSize int, totalCount int64) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}
	return PagedResult[T]{
		Items:           items,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
}
