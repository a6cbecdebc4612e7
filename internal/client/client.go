package client

import (
	"github.com/fivetwenty-io/containersecurity/internal/constants"
	"github.com/fivetwenty-io/containersecurity/internal/http"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
)

// Client implements the cs.Client interface.
type Client struct {
	api     Requester
	baseURL string

	// Resource clients
	reports      cs.ReportsClient
	repositories cs.RepositoriesClient
	usage        cs.UsageClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *cs.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Container Security API client. Config validation is
// left to the caller (see csclient.New); only the credentials are checked.
func New(config *cs.Config) (*Client, error) {
	if config == nil {
		return nil, cs.ErrConfigRequired
	}

	if config.AccessKey == "" {
		return nil, cs.ErrAccessKeyRequired
	}

	if config.SecretKey == "" {
		return nil, cs.ErrSecretKeyRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	keys := &http.APIKeys{AccessKey: config.AccessKey, SecretKey: config.SecretKey}
	httpClient := http.NewClient(baseURL, keys, createHTTPClientOptions(config)...)

	client := NewWithRequester(httpClient)
	client.baseURL = httpClient.BaseURL()

	return client, nil
}

// NewWithRequester creates a client on top of an existing transport.
func NewWithRequester(api Requester) *Client {
	client := &Client{api: api}

	client.initializeResourceClients()

	return client
}

// BaseURL returns the API base URL, empty when built on a custom requester.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Reports implements cs.Client.Reports.
func (c *Client) Reports() cs.ReportsClient {
	return c.reports
}

// Repositories implements cs.Client.Repositories.
func (c *Client) Repositories() cs.RepositoriesClient {
	return c.repositories
}

// Usage implements cs.Client.Usage.
func (c *Client) Usage() cs.UsageClient {
	return c.usage
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.reports = NewReportsClient(c.api)
	c.repositories = NewRepositoriesClient(c.api)
	c.usage = NewUsageClient(c.api)
}
