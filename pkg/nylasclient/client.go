// Package nylasclient provides the main entry point for creating API clients
package nylasclient

import (
	"fmt"
	"strings"

	"github.com/Towerism/nylas-go/internal/client"
	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
)

// New creates a new API client from the config. An empty base URL targets
// the hosted API; a URL without a scheme is assumed to be HTTPS.
func New(config *nylas.Config) (nylas.Client, error) {
	if config == nil {
		return nil, nylas.ErrConfigRequired
	}

	// Normalize the base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a client for one connected account's access token
// against the hosted API.
func NewWithToken(token string) (nylas.Client, error) {
	return New(&nylas.Config{
		AccessToken: token,
	})
}

// NewWithCredentials creates a client carrying the application's client id
// and secret, for the hosted-auth and account-management operations. An
// access token may be supplied as well for account-scoped calls.
func NewWithCredentials(clientID, clientSecret, accessToken string) (nylas.Client, error) {
	return New(&nylas.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AccessToken:  accessToken,
	})
}
