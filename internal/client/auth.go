package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
)

// AuthenticationURL implements nylas.Client.AuthenticationURL. The returned
// URL starts the hosted authentication flow in a browser; no request is
// made here.
func (c *Client) AuthenticationURL(opts nylas.AuthenticateOptions) (string, error) {
	if c.config.ClientID == "" {
		return "", nylas.ErrClientIDRequired
	}

	if opts.RedirectURI == "" {
		return "", nylas.ErrRedirectURIRequired
	}

	query := url.Values{}
	query.Set("client_id", c.config.ClientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", opts.RedirectURI)

	if opts.LoginHint != "" {
		query.Set("login_hint", opts.LoginHint)
	}

	if opts.State != "" {
		query.Set("state", opts.State)
	}

	if len(opts.Scopes) > 0 {
		query.Set("scopes", strings.Join(opts.Scopes, ","))
	}

	return c.baseURL + constants.PathOAuthAuthorize + "?" + query.Encode(), nil
}

// ExchangeCodeForToken implements nylas.Client.ExchangeCodeForToken. The
// returned token authenticates the account that completed the hosted flow.
func (c *Client) ExchangeCodeForToken(ctx context.Context, code string) (*nylas.TokenResponse, error) {
	if c.config.ClientID == "" {
		return nil, nylas.ErrClientIDRequired
	}

	if c.config.ClientSecret == "" {
		return nil, nylas.ErrClientSecretRequired
	}

	if code == "" {
		return nil, nylas.ErrAuthCodeRequired
	}

	query := url.Values{}
	query.Set("client_id", c.config.ClientID)
	query.Set("client_secret", c.config.ClientSecret)
	query.Set("grant_type", "authorization_code")
	query.Set("code", code)

	resp, err := c.httpClient.Get(ctx, constants.PathOAuthToken, query)
	if err != nil {
		return nil, fmt.Errorf("exchanging code for token: %w", err)
	}

	token := &nylas.TokenResponse{}
	if err := json.Unmarshal(resp.Body, token); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	return token, nil
}

// RevokeToken implements nylas.Client.RevokeToken. It invalidates the
// access token this client is configured with.
func (c *Client) RevokeToken(ctx context.Context) error {
	if c.config.AccessToken == "" {
		return nylas.ErrAccessTokenRequired
	}

	if _, err := c.httpClient.Post(ctx, constants.PathOAuthRevoke, nil, nil); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	return nil
}
