package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies an error response's status and message body
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var errBody struct {
		Message string `json:"message"`
	}
	AssertJSONResponse(t, resp, &errBody)
	assert.Equal(t, expectedMessage, errBody.Message, "error message mismatch")
}

// ErrorMessage reads the message field from an error response body
func ErrorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var errBody struct {
		Message string `json:"message"`
	}
	AssertJSONResponse(t, resp, &errBody)
	return errBody.Message
}
