package cs

import (
	"context"
	"iter"
	"net/url"
)

// PageFetcher fetches one page using the given query, which already carries
// the offset and limit for that page.
type PageFetcher[T any] func(ctx context.Context, query url.Values) (*Page[T], error)

// IteratorOptions configures an Iterator.
type IteratorOptions struct {
	Offset int
	Limit  int
	// MaxPages caps the number of pages fetched; zero means no cap.
	MaxPages int
}

// Iterator lazily walks an offset/limit paginated endpoint one item at a
// time. Pages are fetched on demand by HasNext. An Iterator is not safe for
// concurrent use and cannot be restarted once exhausted.
type Iterator[T any] struct {
	ctx   context.Context //nolint:containedctx // pages are fetched lazily on the caller's behalf
	fetch PageFetcher[T]
	query url.Values

	offset       int
	limit        int
	maxPages     int
	pagesFetched int

	page  []T
	index int
	last  bool
	done  bool
	err   error
}

// NewIterator creates an iterator. No request is made until HasNext or Next
// is called.
func NewIterator[T any](ctx context.Context, fetch PageFetcher[T], query url.Values, opts IteratorOptions) *Iterator[T] {
	if query == nil {
		query = url.Values{}
	}

	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	if opts.Offset < 0 {
		opts.Offset = DefaultOffset
	}

	return &Iterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		query:    query,
		offset:   opts.Offset,
		limit:    opts.Limit,
		maxPages: opts.MaxPages,
	}
}

// HasNext reports whether another item, or a pending fetch error, is
// available. It fetches the next page when the current one is drained.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.index < len(it.page) {
		return true
	}

	if it.done || it.last {
		it.done = true

		return false
	}

	it.fetchPage()

	return it.err != nil || it.index < len(it.page)
}

// Next returns the next item. A page fetch failure is returned at the
// position of that page's first item, after which the iterator is
// exhausted. ErrNoMoreItems is returned once all items were consumed.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	item := it.page[it.index]
	it.index++

	return item, nil
}

// All drains the iterator into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *Iterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Seq adapts the iterator for range-over-func loops. Iteration stops after
// the first non-nil error is yielded.
func (it *Iterator[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.HasNext() {
			item, err := it.Next()
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Offset returns the offset of the next page to fetch.
func (it *Iterator[T]) Offset() int {
	return it.offset
}

// PagesFetched returns the number of pages fetched so far.
func (it *Iterator[T]) PagesFetched() int {
	return it.pagesFetched
}

func (it *Iterator[T]) fetchPage() {
	it.query.Set(QueryKeyOffset, formatInt(it.offset))
	it.query.Set(QueryKeyLimit, formatInt(it.limit))

	page, err := it.fetch(it.ctx, it.query)
	it.pagesFetched++

	if err != nil {
		it.page = nil
		it.index = 0
		it.err = err
		it.last = true

		return
	}

	if page == nil {
		page = &Page[T]{}
	}

	it.page = page.Items
	it.index = 0
	it.offset += it.limit

	switch {
	case len(page.Items) < it.limit:
		it.last = true
	case it.maxPages > 0 && it.pagesFetched >= it.maxPages:
		it.last = true
	case page.Total != nil && it.offset >= *page.Total:
		it.last = true
	}
}
