package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateTerminatesAfterKPages(t *testing.T) {
	pages := [][]int{{1, 2}, {3, 4}, {5}}

	list := func(ctx context.Context, cursor *string) (ListPage[int], error) {
		idx := 0
		if cursor != nil {
			n := 0
			for _, c := range *cursor {
				n = n*10 + int(c-'0')
			}
			idx = n
		}
		page := ListPage[int]{Items: pages[idx]}
		if idx+1 < len(pages) {
			next := string(rune('0' + idx + 1))
			page.NextCursor = &next
		}
		return page, nil
	}

	var got []int
	pageCount := 0
	for items, err := range Paginate(context.Background(), list) {
		require.NoError(t, err)
		got = append(got, items...)
		pageCount++
	}

	assert.Equal(t, 3, pageCount)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestPaginateStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	list := func(ctx context.Context, cursor *string) (ListPage[int], error) {
		return ListPage[int]{}, boom
	}

	var sawErr error
	count := 0
	for _, err := range Paginate(context.Background(), list) {
		count++
		sawErr = err
	}

	assert.Equal(t, 1, count)
	assert.ErrorIs(t, sawErr, boom)
}

func TestPaginateConsumerCanStopEarly(t *testing.T) {
	calls := 0
	list := func(ctx context.Context, cursor *string) (ListPage[int], error) {
		calls++
		next := "x"
		return ListPage[int]{Items: []int{calls}, NextCursor: &next}, nil
	}

	for items, err := range Paginate(context.Background(), list) {
		_ = items
		_ = err
		break
	}

	assert.Equal(t, 1, calls, "breaking out of the range must not fetch further pages")
}
