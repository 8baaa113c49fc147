package domain

import "math"

// MaxPageSize is the largest page size a delivery log listing accepts.
const MaxPageSize = 100

// MaxPage is the largest page number whose offset fits in an int at MaxPageSize.
const MaxPage = math.MaxInt/MaxPageSize + 1

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize, saturating at math.MaxInt instead of overflowing.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}
