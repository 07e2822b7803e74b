package utils

import (
	"math"
	"strconv"
)

// MaxPageLimit caps the page size a caller may request
const MaxPageLimit = 500

// PaginationParams selects one page of a listing. A zero Limit selects every row.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams normalizes page and limit. Pages start at 1, a negative limit
// selects every row and limits above MaxPageLimit are capped.
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 0:
		limit = 0
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return PaginationParams{Page: page, Limit: limit}
}

// ParsePagination reads raw page and limit query values. Unparsable values use the defaults.
func ParsePagination(page, limit string) PaginationParams {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = 1
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = 0
	}
	return GetPaginationParams(p, l)
}

// Paged reports whether the listing is restricted to one page
func (p PaginationParams) Paged() bool {
	return p.Limit > 0
}

// Offset returns the number of rows preceding the page
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the page within totalCount rows
func (p PaginationParams) Meta(totalCount int64) PaginationMeta {
	if !p.Paged() {
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}
	return PaginationMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(p.Limit))),
	}
}
