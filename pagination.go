// pagination.go implements the pagination driver (§4.6): iterate a list
// endpoint by threading cursors until the server returns a nil
// nextCursor. Expressed as a Go 1.23+ range-over-func iterator (the
// module targets go 1.24, the teacher's own go.mod version) rather than a
// channel — there is no producer/consumer concurrency here, just a lazy
// pull sequence, so iter.Seq2 is the more direct idiom than spinning up a
// goroutine and a channel the way notify/filter.go does for genuinely
// concurrent stream transforms.
package mcp

import (
	"context"
	"iter"
)

// ListPage is one page of T produced by a paginated endpoint.
type ListPage[T any] struct {
	Items      []T
	NextCursor *string
}

// ListFunc fetches one page given the current cursor (nil for the first
// page).
type ListFunc[T any] func(ctx context.Context, cursor *string) (ListPage[T], error)

// Paginate returns an iterator that yields one page of items per
// iteration, starting with a nil cursor and threading each page's
// NextCursor into the next call, terminating when NextCursor is nil
// (§4.6, §8 "pagination termination"). Any error from list aborts the
// sequence with that error; consumers may stop ranging early (no
// pagination state is persisted beyond the closure's local cursor
// variable).
func Paginate[T any](ctx context.Context, list ListFunc[T]) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		var cursor *string
		for {
			page, err := list(ctx, cursor)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(page.Items, nil) {
				return
			}
			if page.NextCursor == nil {
				return
			}
			cursor = page.NextCursor
		}
	}
}
