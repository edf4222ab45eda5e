package pager

import (
	"context"
	"errors"
)

// ErrNoPage is returned by a PageSource when the requested page index is
// beyond the end of the sequence. Checked navigation treats it as a soft
// condition and swallows it.
var ErrNoPage = errors.New("no such page")

// PageSource supplies the logical page sequence for one session. Page fetches
// may be deferred or expensive; the session only calls Page for the page it
// is about to render.
type PageSource[T any] interface {
	// PageCount returns the number of pages when known. ok is false for
	// unbounded or streamed sources, whose length is not known up front.
	PageCount() (n int, ok bool)

	// TotalEntries returns the total number of entries across all pages.
	TotalEntries() int

	// Page fetches the entries of one zero-based page.
	Page(ctx context.Context, index int) ([]T, error)
}

// SliceSource is a PageSource over an in-memory slice.
type SliceSource[T any] struct {
	entries []T
	perPage int
}

// NewSliceSource creates a source serving perPage entries per page.
func NewSliceSource[T any](entries []T, perPage int) *SliceSource[T] {
	if perPage <= 0 {
		perPage = 1
	}
	return &SliceSource[T]{entries: entries, perPage: perPage}
}

// PageCount returns the page count, always known for a slice.
func (s *SliceSource[T]) PageCount() (int, bool) {
	return (len(s.entries) + s.perPage - 1) / s.perPage, true
}

// TotalEntries returns the number of entries.
func (s *SliceSource[T]) TotalEntries() int {
	return len(s.entries)
}

// PerPage returns the page size.
func (s *SliceSource[T]) PerPage() int {
	return s.perPage
}

// Page returns one page of entries, or ErrNoPage out of range.
func (s *SliceSource[T]) Page(_ context.Context, index int) ([]T, error) {
	count, _ := s.PageCount()
	if index < 0 || index >= count {
		return nil, ErrNoPage
	}
	start := index * s.perPage
	end := min(start+s.perPage, len(s.entries))
	return s.entries[start:end], nil
}
