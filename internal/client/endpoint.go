package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/containersecurity/internal/http"
)

// Requester is the part of the transport the resource clients depend on.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values) (*http.Response, error)
	Delete(ctx context.Context, path string) (*http.Response, error)
}

// Endpoint binds a shared Requester to one resource path prefix. It is
// embedded by every resource client and never modified after construction.
type Endpoint struct {
	api  Requester
	path string
}

// NewEndpoint creates an endpoint for the given path prefix.
func NewEndpoint(api Requester, path string) Endpoint {
	return Endpoint{api: api, path: path}
}

// API returns the shared requester.
func (e Endpoint) API() Requester {
	return e.api
}

// Path returns the resource path prefix.
func (e Endpoint) Path() string {
	return e.path
}

// Resource returns the path of a single resource below the prefix.
func (e Endpoint) Resource(id string) string {
	return e.path + "/" + url.PathEscape(id)
}
