package helpers

import (
	"net/http"
	"strconv"

	"playerone/internal/domain"
)

// ParsePagination reads page, size, sort_by and sort_dir from the query string.
// Pages are zero-based. Missing or malformed numbers are left for the service to
// default; bounds are enforced by PaginationParams.Normalize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	params := domain.PaginationParams{
		SortBy:  q.Get("sort_by"),
		SortDir: domain.ParseSortDirection(q.Get("sort_dir"), ""),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		params.PageSize = v
	}
	return params
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// TotalPages is computed as ceiling(total / pageSize); if pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		Size:       pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PagedResponse is the data payload of every paged listing.
type PagedResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPagedResponse wraps items with pagination metadata. Page and size are
// reported after the same clamping the query used.
func NewPagedResponse[T any](items []T, params domain.PaginationParams, total int) PagedResponse[T] {
	params = params.Bounded()
	if items == nil {
		items = []T{}
	}
	return PagedResponse[T]{
		Items:      items,
		Pagination: NewPaginationMeta(params.Page, params.PageSize, total),
	}
}
