package cs_test

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestResource struct {
	ID int
}

// MockPageServer serves pages of the given sizes in order, then empty pages.
type MockPageServer struct {
	sizes   []int
	queries []url.Values
	failAt  int
	err     error
}

func (m *MockPageServer) Fetch(ctx context.Context, query url.Values) (*cs.Page[TestResource], error) {
	clone := url.Values{}
	for key, values := range query {
		clone[key] = append([]string(nil), values...)
	}

	m.queries = append(m.queries, clone)
	call := len(m.queries)

	if m.failAt > 0 && call == m.failAt {
		return nil, m.err
	}

	offset, _ := strconv.Atoi(query.Get("offset"))

	size := 0
	if call <= len(m.sizes) {
		size = m.sizes[call-1]
	}

	items := make([]TestResource, 0, size)
	for i := 0; i < size; i++ {
		items = append(items, TestResource{ID: offset + i})
	}

	return &cs.Page[TestResource]{Items: items}, nil
}

func newIterator(server *MockPageServer, opts cs.IteratorOptions) *cs.Iterator[TestResource] {
	return cs.NewIterator[TestResource](context.Background(), server.Fetch, nil, opts)
}

func TestIterator_HasNext(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{2, 1}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 2})

	assert.Empty(t, server.queries, "no request before iteration")

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, item1.ID)

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, item2.ID)

	// Page 2 is fetched on demand
	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, item3.ID)

	// Short page ends iteration without another request
	assert.False(t, iterator.HasNext())
	assert.Len(t, server.queries, 2)

	_, err = iterator.Next()
	require.ErrorIs(t, err, cs.ErrNoMoreItems)
}

func TestIterator_ShortPageTerminates(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{50, 50, 13}}
	iterator := newIterator(server, cs.IteratorOptions{})

	all, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, all, 113)
	assert.Equal(t, 112, all[112].ID)
	assert.Len(t, server.queries, 3)

	for i, query := range server.queries {
		assert.Equal(t, strconv.Itoa(i*50), query.Get("offset"))
		assert.Equal(t, "50", query.Get("limit"))
	}
}

func TestIterator_PageCap(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{50, 50, 50, 50, 50}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 50, MaxPages: 2})

	all, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, all, 100)
	assert.Equal(t, 2, iterator.PagesFetched())
	assert.Equal(t, 100, iterator.Offset())
}

func TestIterator_EmptyFirstPage(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{}
	iterator := newIterator(server, cs.IteratorOptions{Offset: 200})

	assert.False(t, iterator.HasNext())
	assert.Len(t, server.queries, 1)
	assert.Equal(t, "200", server.queries[0].Get("offset"))
}

func TestIterator_FetchError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	server := &MockPageServer{sizes: []int{2, 2, 2}, failAt: 2, err: errBoom}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 2})

	items, err := iterator.All()
	require.ErrorIs(t, err, errBoom)
	assert.Len(t, items, 2, "items of the first page are kept")

	assert.False(t, iterator.HasNext())
	assert.Len(t, server.queries, 2, "no retry after a failure")
}

func TestIterator_ForEach(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{2, 1}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 2})

	var collected []int
	err := iterator.ForEach(func(resource TestResource) error {
		collected = append(collected, resource.ID)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, collected)
}

func TestIterator_ForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	server := &MockPageServer{sizes: []int{2, 2, 2}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 2})

	err := iterator.ForEach(func(resource TestResource) error {
		if resource.ID == 1 {
			return errStop
		}

		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Len(t, server.queries, 1)
}

func TestIterator_Seq(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{3, 3, 1}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 3})

	count := 0
	for item, err := range iterator.Seq() {
		require.NoError(t, err)
		assert.Equal(t, count, item.ID)
		count++

		if count == 4 {
			break
		}
	}

	assert.Equal(t, 4, count)
	assert.Len(t, server.queries, 2, "breaking early stops fetching")
}

func TestIterator_NotRestartable(t *testing.T) {
	t.Parallel()

	server := &MockPageServer{sizes: []int{1}}
	iterator := newIterator(server, cs.IteratorOptions{Limit: 5})

	first, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := iterator.All()
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, server.queries, 1)
}

func TestIterator_ReportedTotal(t *testing.T) {
	t.Parallel()

	total := 4
	calls := 0
	fetch := func(ctx context.Context, query url.Values) (*cs.Page[TestResource], error) {
		calls++

		return &cs.Page[TestResource]{Items: make([]TestResource, 2), Total: &total}, nil
	}

	iterator := cs.NewIterator[TestResource](context.Background(), fetch, url.Values{"nameContains": {"x"}}, cs.IteratorOptions{Limit: 2})

	all, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 2, calls)
}
