// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package pagination provides the fixed-size page container returned
// by list operations.
package pagination

// PageSize is the number of records per page on every paginated list.
const PageSize = 10

// Page is one slice of an ordered result set plus total-count metadata.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based page number
	Size       int
	TotalItems int
}

// NewPage builds a page from an already-sliced item set. Page numbers
// below 1 are normalized to 1.
func NewPage[T any](items []T, number, total int) Page[T] {
	if number < 1 {
		number = 1
	}
	return Page[T]{
		Items:      items,
		Number:     number,
		Size:       PageSize,
		TotalItems: total,
	}
}

// TotalPages reports how many pages the result set spans. An empty set
// still has one (empty) page.
func (p Page[T]) TotalPages() int {
	if p.TotalItems <= 0 {
		return 1
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages() }

// Offset converts a 1-based page number into a row offset.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
