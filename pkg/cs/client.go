package cs

import (
	"context"
	"time"
)

// ReportsClient retrieves image vulnerability reports.
type ReportsClient interface {
	Report(ctx context.Context, digest string) (Record, error)
}

// RepositoriesClient manages registry repositories.
type RepositoriesClient interface {
	List(ctx context.Context, query *RepositoryQuery) (*Iterator[Record], error)
	Details(ctx context.Context, name string) ([]Record, error)
	Delete(ctx context.Context, name string) error
}

// UsageClient retrieves organization usage statistics.
type UsageClient interface {
	Stats(ctx context.Context) (Record, error)
}

// Client groups the resource clients.
type Client interface {
	Reports() ReportsClient
	Repositories() RepositoriesClient
	Usage() UsageClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cs.Client.
//
// Requests authenticate with an API key pair sent in the X-ApiKeys header.
// Per-request deadlines should be set on the context passed to each method;
// HTTPTimeout only bounds a single round trip.
type Config struct {
	// APIEndpoint: base URL of the Container Security API. When empty the
	// public cloud endpoint is used.
	APIEndpoint string `validate:"omitempty,url"`
	// AccessKey and SecretKey: API key pair of the calling user.
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`

	// HTTPTimeout: timeout of a single HTTP round trip.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429 and connection errors). Zero disables retries.
	RetryMax int `validate:"gte=0,lte=10"`
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration `validate:"gte=0"`
	RetryWaitMax time.Duration `validate:"gte=0"`
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
