package cs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &cs.ValidationError{Param: "limit", Expected: "int", Value: "50"}
	assert.Equal(t, `limit is of type string (value "50"), expected int`, err.Error())
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "structured errors",
			status:  404,
			body:    `{"errors":[{"code":404,"title":"NotFound","detail":"no report"}]}`,
			message: "status 404: NotFound: no report (code: 404)",
		},
		{
			name:    "error field",
			status:  401,
			body:    `{"error":"Invalid Credentials"}`,
			message: "status 401: Invalid Credentials",
		},
		{
			name:    "plain text",
			status:  502,
			body:    `bad gateway`,
			message: "status 502: bad gateway",
		},
		{
			name:    "empty body",
			status:  503,
			body:    ``,
			message: "status 503: Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cs.ParseResponseError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting report: %w", cs.ParseResponseError(404, nil))
	assert.True(t, cs.IsNotFound(wrapped))
	assert.False(t, cs.IsUnauthorized(wrapped))

	assert.True(t, cs.IsUnauthorized(cs.ParseResponseError(401, nil)))
	assert.True(t, cs.IsForbidden(cs.ParseResponseError(403, nil)))
	assert.False(t, cs.IsNotFound(errors.New("plain")))

	first := cs.ParseResponseError(404, []byte(`{"errors":[{"code":1,"title":"A"},{"code":2,"title":"B"}]}`)).FirstError()
	require.NotNil(t, first)
	assert.Equal(t, "A", first.Title)

	parseErr := &cs.ParseError{Path: "reports/x", Err: cs.ErrUnexpectedResponse}
	assert.ErrorIs(t, parseErr, cs.ErrUnexpectedResponse)
	assert.Equal(t, "parsing response from reports/x: unexpected response shape", parseErr.Error())
}
