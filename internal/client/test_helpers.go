package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

// NewTestClient creates a client against the given base URL with fixed test
// credentials.
func NewTestClient(baseURL string) *Client {
	client, _ := New(&nylas.Config{
		BaseURL:      baseURL,
		AccessToken:  "test-token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})

	return client
}

// JSONHandler builds a handler that asserts the method and path before
// writing the response as JSON.
func JSONHandler(t *testing.T, method, path string, status int, response interface{}) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, method, request.Method)
		assert.Equal(t, path, request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)

		if response != nil {
			_ = json.NewEncoder(writer).Encode(response)
		}
	}
}

// NewJSONServer starts an httptest server serving one canned JSON response.
func NewJSONServer(t *testing.T, method, path string, status int, response interface{}) *httptest.Server {
	t.Helper()

	return httptest.NewServer(JSONHandler(t, method, path, status, response))
}
