package csclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/fivetwenty-io/containersecurity/pkg/csclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := csclient.New(nil)
		require.ErrorIs(t, err, cs.ErrConfigRequired)
	})

	tests := []struct {
		name    string
		config  *cs.Config
		message string
	}{
		{
			name:    "missing access key",
			config:  &cs.Config{SecretKey: "sk"},
			message: "AccessKey must satisfy required",
		},
		{
			name:    "missing secret key",
			config:  &cs.Config{AccessKey: "ak"},
			message: "SecretKey must satisfy required",
		},
		{
			name:    "too many retries",
			config:  &cs.Config{AccessKey: "ak", SecretKey: "sk", RetryMax: 50},
			message: "RetryMax must satisfy lte=10",
		},
		{
			name:    "malformed endpoint",
			config:  &cs.Config{AccessKey: "ak", SecretKey: "sk", APIEndpoint: "https://exa mple.com"},
			message: "APIEndpoint must satisfy url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := csclient.New(tt.config)
			require.ErrorIs(t, err, csclient.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	t.Run("trims trailing slash", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/container-security/api/v2/organization-stats", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"imagesCount": 1})
		}))
		defer server.Close()

		client, err := csclient.New(&cs.Config{
			APIEndpoint: server.URL + "/container-security/api/v2/",
			AccessKey:   "ak",
			SecretKey:   "sk",
		})
		require.NoError(t, err)

		stats, err := client.Usage().Stats(t.Context())
		require.NoError(t, err)
		assert.Equal(t, json.Number("1"), stats["imagesCount"])
	})

	t.Run("does not modify the caller's config", func(t *testing.T) {
		t.Parallel()

		config := &cs.Config{APIEndpoint: "example.com/api/", AccessKey: "ak", SecretKey: "sk"}

		_, err := csclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "example.com/api/", config.APIEndpoint)
	})
}

func TestNewWithAPIKeys(t *testing.T) {
	t.Parallel()

	client, err := csclient.NewWithAPIKeys("ak", "sk")
	require.NoError(t, err)
	assert.NotNil(t, client.Reports())
}
