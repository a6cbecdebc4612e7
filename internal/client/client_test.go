package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/fivetwenty-io/containersecurity/internal/client"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *cs.Config
		wantErr error
	}{
		{name: "requires config", config: nil, wantErr: cs.ErrConfigRequired},
		{name: "requires access key", config: &cs.Config{SecretKey: "sk"}, wantErr: cs.ErrAccessKeyRequired},
		{name: "requires secret key", config: &cs.Config{AccessKey: "ak"}, wantErr: cs.ErrSecretKeyRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.config)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("uses the default endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := New(&cs.Config{AccessKey: "ak", SecretKey: "sk"})
		require.NoError(t, err)
		assert.Equal(t, "https://cloud.tenable.com/container-security/api/v2", client.BaseURL())
		assert.NotNil(t, client.Reports())
		assert.NotNil(t, client.Repositories())
		assert.NotNil(t, client.Usage())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_EndToEnd(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/reports/{digest}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "accessKey=ak;secretKey=sk", r.Header.Get("X-ApiKeys"))
		_ = json.NewEncoder(w).Encode(map[string]any{"sha256": r.PathValue("digest")})
	})
	mux.HandleFunc("GET /api/v2/repositories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ubuntu", r.URL.Query().Get("nameContains"))
		items := []map[string]any{{"name": "ubuntu"}}
		if r.URL.Query().Get("offset") != "0" {
			items = nil
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
	})
	mux.HandleFunc("GET /api/v2/repositories/{name}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"repoName": r.PathValue("name"), "tag": "latest"}})
	})
	mux.HandleFunc("DELETE /api/v2/repositories/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"code":404,"title":"NotFound","detail":"no such repository"}]}`))

			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/v2/organization-stats", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"imagesCount": 4})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := New(&cs.Config{
		APIEndpoint: server.URL + "/api/v2",
		AccessKey:   "ak",
		SecretKey:   "sk",
	})
	require.NoError(t, err)

	ctx := context.Background()

	report, err := client.Reports().Report(ctx, "sha256:abc")
	require.NoError(t, err)
	assert.Equal(t, "sha256:abc", report["sha256"])

	it, err := client.Repositories().List(ctx, cs.NewRepositoryQuery().WithContains("ubuntu"))
	require.NoError(t, err)

	repos, err := it.All()
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "ubuntu", repos[0]["name"])

	images, err := client.Repositories().Details(ctx, "library")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "library", images[0]["repoName"])

	require.NoError(t, client.Repositories().Delete(ctx, "library"))

	err = client.Repositories().Delete(ctx, "missing")
	require.Error(t, err)
	assert.True(t, cs.IsNotFound(err))
	assert.Contains(t, err.Error(), "no such repository")

	stats, err := client.Usage().Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, json.Number("4"), stats["imagesCount"])
}
