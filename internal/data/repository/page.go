package repository

import (
	"errors"

	"movie-catalog/pkg/utils"
)

var ErrInvalidPage = errors.New("page number and page size must be at least 1")

// Page is one offset/limit slice of a listing plus the totals needed to navigate it.
type Page[T any] struct {
	Items      []*T
	TotalCount int64
	PageNumber int
	PageSize   int
}

func (p *Page[T]) TotalPages() int {
	return utils.PageCount(p.TotalCount, p.PageSize)
}

func (p *Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

func (p *Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}
