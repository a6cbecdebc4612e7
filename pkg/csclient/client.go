package csclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/containersecurity/internal/client"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when the configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New(validator.WithRequiredStructEnabled())

// New creates a new Container Security API client.
func New(config *cs.Config) (cs.Client, error) {
	if config == nil {
		return nil, cs.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(normalized.APIEndpoint)

	err := validate.Struct(&normalized)
	if err != nil {
		return nil, describeValidation(err)
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKeys creates a client for the default endpoint.
func NewWithAPIKeys(accessKey, secretKey string) (cs.Client, error) {
	return New(&cs.Config{
		AccessKey: accessKey,
		SecretKey: secretKey,
	})
}

// normalizeEndpoint trims a trailing slash and adds "https://" if no scheme
// is present.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return ""
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if fieldErr.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s must satisfy %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s must satisfy %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
