package domain

import "fmt"

// DefaultPageSize and MaxPageSize bound list queries.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination converts a (page, page size) pair into a bounded (limit, offset).
// Construct with NewPagination; the zero value is not valid.
type Pagination struct {
	page        int
	pageSize    int
	maxPageSize int
}

// NewPagination validates page, pageSize, and maxPageSize (all must be >= 1).
// pageSize above maxPageSize is clamped, never rejected. Errors wrap
// ErrInvalidArgument.
func NewPagination(page, pageSize, maxPageSize int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if pageSize < 1 {
		return Pagination{}, fmt.Errorf("%w: page_size must be >= 1", ErrInvalidArgument)
	}
	if maxPageSize < 1 {
		return Pagination{}, fmt.Errorf("%w: max page size must be >= 1", ErrInvalidArgument)
	}
	return Pagination{page: page, pageSize: pageSize, maxPageSize: maxPageSize}, nil
}

// DefaultPagination returns page 1 with the default page size.
func DefaultPagination() Pagination {
	return Pagination{page: DefaultPage, pageSize: DefaultPageSize, maxPageSize: MaxPageSize}
}

// Limit returns the page size clamped to the maximum.
func (p Pagination) Limit() int {
	if p.pageSize > p.maxPageSize {
		return p.maxPageSize
	}
	return p.pageSize
}

// Offset returns the row offset for the current page (0-based).
func (p Pagination) Offset() int {
	return (p.page - 1) * p.Limit()
}

// Page returns the 1-based page number.
func (p Pagination) Page() int { return p.page }
