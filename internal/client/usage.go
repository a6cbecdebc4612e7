package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/containersecurity/internal/constants"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
)

// UsageClient implements cs.UsageClient.
type UsageClient struct {
	Endpoint
}

// NewUsageClient creates a new usage client.
func NewUsageClient(api Requester) *UsageClient {
	return &UsageClient{Endpoint: NewEndpoint(api, constants.OrganizationStatsPath)}
}

// Stats implements cs.UsageClient.Stats.
func (c *UsageClient) Stats(ctx context.Context) (cs.Record, error) {
	stats, err := getRecord(ctx, c.API(), c.Path(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting usage stats: %w", err)
	}

	return stats, nil
}
