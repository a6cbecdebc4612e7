package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/containersecurity/internal/constants"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
)

// RepositoriesClient implements cs.RepositoriesClient.
type RepositoriesClient struct {
	Endpoint
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(api Requester) *RepositoriesClient {
	return &RepositoriesClient{Endpoint: NewEndpoint(api, constants.RepositoriesPath)}
}

// List implements cs.RepositoriesClient.List. The query is validated up
// front; no request is made until the returned iterator is advanced.
func (c *RepositoriesClient) List(ctx context.Context, query *cs.RepositoryQuery) (*cs.Iterator[cs.Record], error) {
	err := query.Validate()
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, values url.Values) (*cs.Page[cs.Record], error) {
		page, err := getRecords(ctx, c.API(), c.Path(), values)
		if err != nil {
			return nil, fmt.Errorf("listing repositories: %w", err)
		}

		return page, nil
	}

	return cs.NewIterator(ctx, fetch, query.ToValues(), query.IteratorOptions()), nil
}

// Details implements cs.RepositoriesClient.Details. It returns the images
// stored in the repository.
func (c *RepositoriesClient) Details(ctx context.Context, name string) ([]cs.Record, error) {
	name, err := cs.CheckNonEmpty("name", name)
	if err != nil {
		return nil, err
	}

	page, err := getRecords(ctx, c.API(), c.Resource(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting repository details: %w", err)
	}

	return page.Items, nil
}

// Delete implements cs.RepositoriesClient.Delete.
func (c *RepositoriesClient) Delete(ctx context.Context, name string) error {
	name, err := cs.CheckNonEmpty("name", name)
	if err != nil {
		return err
	}

	_, err = c.API().Delete(ctx, c.Resource(name))
	if err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}

	return nil
}
