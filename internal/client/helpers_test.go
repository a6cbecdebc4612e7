package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/fivetwenty-io/containersecurity/internal/http"
	"github.com/stretchr/testify/require"
)

// recordedCall is one call seen by mockRequester.
type recordedCall struct {
	Method string
	Path   string
	Query  url.Values
}

// mockRequester records every call and answers with respond.
type mockRequester struct {
	calls   []recordedCall
	respond func(call recordedCall) (*http.Response, error)
}

func (m *mockRequester) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return m.do(recordedCall{Method: "GET", Path: path, Query: cloneValues(query)})
}

func (m *mockRequester) Delete(ctx context.Context, path string) (*http.Response, error) {
	return m.do(recordedCall{Method: "DELETE", Path: path})
}

func (m *mockRequester) do(call recordedCall) (*http.Response, error) {
	m.calls = append(m.calls, call)

	if m.respond == nil {
		return &http.Response{StatusCode: 200, Body: []byte("{}")}, nil
	}

	return m.respond(call)
}

// cloneValues copies the query so later mutations by the iterator do not
// rewrite recorded history.
func cloneValues(values url.Values) url.Values {
	if values == nil {
		return nil
	}

	clone := make(url.Values, len(values))
	for key, vals := range values {
		clone[key] = append([]string(nil), vals...)
	}

	return clone
}

func jsonResponse(t *testing.T, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return &http.Response{StatusCode: 200, Body: data}
}

// repositoryPage builds n repository records numbered from start.
func repositoryPage(start, n int) []map[string]any {
	page := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		page = append(page, map[string]any{
			"name":        fmt.Sprintf("repo-%d", start+i),
			"imagesCount": 1,
		})
	}

	return page
}

// pagedResponder serves pages by call index; calls past the end get an
// empty page.
func pagedResponder(t *testing.T, sizes ...int) func(call recordedCall) (*http.Response, error) {
	t.Helper()

	index := 0
	served := 0

	return func(call recordedCall) (*http.Response, error) {
		if index >= len(sizes) {
			return jsonResponse(t, []any{}), nil
		}

		size := sizes[index]
		index++

		page := repositoryPage(served, size)
		served += size

		return jsonResponse(t, page), nil
	}
}
