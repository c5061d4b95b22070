// Package testutil provides common test helpers for handler and integration tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"parcours/pkg/platform/httputil"
)

// NewJSONRequest creates a request whose body is body marshaled to JSON.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithBearer sets the Authorization header.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// DecodeErrors decodes an error response.
func DecodeErrors(t *testing.T, rr *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body), "failed to decode error response")
	return body
}

// ErrorCodes lists the status codes of an error response in order.
func ErrorCodes(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	body := DecodeErrors(t, rr)
	codes := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		codes = append(codes, e.StatusCode)
	}
	return codes
}

// DecodeResult decodes the "result" member of a successful response into v.
func DecodeResult(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	var body struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body), "failed to decode response")
	require.NoError(t, json.Unmarshal(body.Result, v), "failed to decode result")
}
