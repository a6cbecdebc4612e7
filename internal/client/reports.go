package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/containersecurity/internal/constants"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
)

// ReportsClient implements cs.ReportsClient.
type ReportsClient struct {
	Endpoint
}

// NewReportsClient creates a new reports client.
func NewReportsClient(api Requester) *ReportsClient {
	return &ReportsClient{Endpoint: NewEndpoint(api, constants.ReportsPath)}
}

// Report implements cs.ReportsClient.Report.
func (c *ReportsClient) Report(ctx context.Context, digest string) (cs.Record, error) {
	digest, err := cs.CheckNonEmpty("digest", digest)
	if err != nil {
		return nil, err
	}

	report, err := getRecord(ctx, c.API(), c.Resource(digest), nil)
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return report, nil
}
