package constants

import "time"

// ConfigDirPerm is the permission for configuration directories.
const ConfigDirPerm = 0750

// API endpoint and resource paths.
const (
	// DefaultAPIEndpoint is the public cloud Container Security API.
	DefaultAPIEndpoint = "https://cloud.tenable.com/container-security/api/v2"

	// ReportsPath is the prefix of image report resources.
	ReportsPath = "reports"

	// RepositoriesPath is the prefix of repository resources.
	RepositoriesPath = "repositories"

	// OrganizationStatsPath is the usage statistics resource.
	OrganizationStatsPath = "organization-stats"
)

// HTTP headers.
const (
	// APIKeysHeader carries the access/secret key pair.
	APIKeysHeader = "X-ApiKeys"

	// DefaultUserAgent is sent unless overridden.
	DefaultUserAgent = "containersecurity-go"

	// ContentTypeJSON is the accepted response media type.
	ContentTypeJSON = "application/json"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Retry limits.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Logging limits.
const (
	// MaxLoggedBodyBytes bounds response bodies written to debug logs.
	MaxLoggedBodyBytes = 1024
)
