// Package testutil provides common test utilities for the storefront backend.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response wrapper
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *EnvelopeError  `json:"error"`
}

// EnvelopeError is the error part of an Envelope
type EnvelopeError struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Details   json.RawMessage `json:"details"`
}

// APIClient sends requests straight to an http.Handler
type APIClient struct {
	Handler http.Handler
	Headers map[string]string
}

// NewAPIClient creates a client for h
func NewAPIClient(h http.Handler) *APIClient {
	return &APIClient{Handler: h, Headers: map[string]string{}}
}

// Do sends a JSON request. A nil body sends no payload.
func (c *APIClient) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = ToJSONReader(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.serve(req)
}

// PostForm sends a form-encoded POST, as payment gateways do
func (c *APIClient) PostForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.serve(req)
}

func (c *APIClient) serve(req *http.Request) *httptest.ResponseRecorder {
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	c.Handler.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope parses the response body as an Envelope
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse response: %s", w.Body.String())
	return env
}

// DecodeData asserts success and parses the data field into T
func DecodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	env := DecodeEnvelope(t, w)
	require.True(t, env.Success, "Expected success response: %s", w.Body.String())

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), "Failed to parse data")
	return v
}

// AssertSuccessResponse asserts the response is a successful API response
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	env := DecodeEnvelope(t, w)
	assert.True(t, env.Success, "Expected success to be true")
	assert.Nil(t, env.Error, "Expected no error")
}

// AssertErrorResponse asserts the status and error code of a failed response
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, w.Code, "Unexpected status code: %s", w.Body.String())
	env := DecodeEnvelope(t, w)
	assert.False(t, env.Success, "Expected success to be false")
	require.NotNil(t, env.Error, "Expected error object in response")
	assert.Equal(t, code, env.Error.Code, "Unexpected error code")
}

// ToJSONReader converts a value to a JSON io.Reader
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
