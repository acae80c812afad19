package nylas

import (
	"context"
	"fmt"
	"time"
)

// ManagementAccount is the application-level view of one connected account,
// served under the /a/{client_id} prefix with client-secret authentication.
type ManagementAccount struct {
	Resource

	BillingState string `json:"billing_state" yaml:"billing_state"`
	Email        string `json:"email"         yaml:"email"`
	Provider     string `json:"provider"      yaml:"provider"`
	SyncState    string `json:"sync_state"    yaml:"sync_state"`
	Trial        bool   `json:"trial"         yaml:"trial"`
}

// ManagementAccountSchema declares ManagementAccount's wire mapping.
var ManagementAccountSchema = NewSchema("account", "accounts",
	func(a *ManagementAccount) *Resource { return &a.Resource },
	String("billing_state", func(a *ManagementAccount) *string { return &a.BillingState }),
	String("email", func(a *ManagementAccount) *string { return &a.Email }),
	String("provider", func(a *ManagementAccount) *string { return &a.Provider }),
	String("sync_state", func(a *ManagementAccount) *string { return &a.SyncState }),
	Bool("trial", func(a *ManagementAccount) *bool { return &a.Trial }),
)

// AccessTokenInfo describes one access token issued for an account.
type AccessTokenInfo struct {
	Scopes    string    `json:"scopes"     yaml:"scopes"`
	State     string    `json:"state"      yaml:"state"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

var accessTokenInfoSchema = NewObjectSchema(
	String("scopes", func(i *AccessTokenInfo) *string { return &i.Scopes }),
	String("state", func(i *AccessTokenInfo) *string { return &i.State }),
	DateTime("created_at", func(i *AccessTokenInfo) *time.Time { return &i.CreatedAt }),
	DateTime("updated_at", func(i *AccessTokenInfo) *time.Time { return &i.UpdatedAt }),
)

// IPAddresses lists the source addresses the platform calls out from.
type IPAddresses struct {
	Addresses []string  `json:"ip_addresses" yaml:"ip_addresses"`
	UpdatedAt time.Time `json:"updated_at"   yaml:"updated_at"`
}

var ipAddressesSchema = NewObjectSchema(
	StringList("ip_addresses", func(i *IPAddresses) *[]string { return &i.Addresses }),
	DateTime("updated_at", func(i *IPAddresses) *time.Time { return &i.UpdatedAt }),
)

// ManagementAccountsService exposes the application's accounts collection
// plus the billing and token operations on it.
type ManagementAccountsService struct {
	*Collection[ManagementAccount]

	api      Requester
	clientID string
}

// NewManagementAccountsService creates the management accounts service for
// one application.
func NewManagementAccountsService(api Requester, clientID string) *ManagementAccountsService {
	return &ManagementAccountsService{
		Collection: NewPrefixedCollection(api, ManagementAccountSchema, "/a/"+clientID),
		api:        api,
		clientID:   clientID,
	}
}

// Downgrade moves the account to the free tier and stops syncing it.
func (s *ManagementAccountsService) Downgrade(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("downgrading account: %w", ErrMissingID)
	}

	if _, err := s.api.Post(ctx, s.ItemPath(id)+"/downgrade", nil, nil); err != nil {
		return fmt.Errorf("downgrading account %q: %w", id, err)
	}

	return nil
}

// Upgrade moves the account back to the paid tier and resumes syncing.
func (s *ManagementAccountsService) Upgrade(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("upgrading account: %w", ErrMissingID)
	}

	if _, err := s.api.Post(ctx, s.ItemPath(id)+"/upgrade", nil, nil); err != nil {
		return fmt.Errorf("upgrading account %q: %w", id, err)
	}

	return nil
}

// RevokeAllTokens invalidates every access token issued for the account. A
// non-empty keepAccessToken survives the sweep.
func (s *ManagementAccountsService) RevokeAllTokens(ctx context.Context, id, keepAccessToken string) error {
	if id == "" {
		return fmt.Errorf("revoking tokens: %w", ErrMissingID)
	}

	body := map[string]interface{}{}
	if keepAccessToken != "" {
		body["keep_access_token"] = keepAccessToken
	}

	if _, err := s.api.Post(ctx, s.ItemPath(id)+"/revoke-all", nil, body); err != nil {
		return fmt.Errorf("revoking tokens for account %q: %w", id, err)
	}

	return nil
}

// TokenInfo looks up the state of one access token without exposing the
// token in a URL.
func (s *ManagementAccountsService) TokenInfo(ctx context.Context, id, accessToken string) (*AccessTokenInfo, error) {
	if id == "" {
		return nil, fmt.Errorf("fetching token info: %w", ErrMissingID)
	}

	body := map[string]interface{}{"access_token": accessToken}

	resp, err := s.api.Post(ctx, s.ItemPath(id)+"/token-info", nil, body)
	if err != nil {
		return nil, fmt.Errorf("fetching token info for account %q: %w", id, err)
	}

	info := &AccessTokenInfo{}
	if err := FromWire(accessTokenInfoSchema, info, resp.Body); err != nil {
		return nil, fmt.Errorf("fetching token info for account %q: %w", id, err)
	}

	return info, nil
}

// IPAddresses lists the platform's outbound source addresses for the
// application.
func (s *ManagementAccountsService) IPAddresses(ctx context.Context) (*IPAddresses, error) {
	resp, err := s.api.Get(ctx, "/a/"+s.clientID+"/ip_addresses", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching IP addresses: %w", err)
	}

	ips := &IPAddresses{}
	if err := FromWire(ipAddressesSchema, ips, resp.Body); err != nil {
		return nil, fmt.Errorf("fetching IP addresses: %w", err)
	}

	return ips, nil
}
