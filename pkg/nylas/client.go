package nylas

import (
	"context"
	"net/http"
	"time"
)

// MailClients provides access to mailbox resource services.
type MailClients interface {
	Messages() *MessagesService
	Threads() *ThreadsService
	Drafts() *DraftsService
	Labels() *LabelsService
	Folders() *FoldersService
	Files() *FilesService
}

// CalendarClients provides access to calendar resource services.
type CalendarClients interface {
	Calendars() *CalendarsService
	Events() *EventsService
}

// AccountClients provides access to the current account and, when the client
// is configured with application credentials, to application-managed
// accounts.
type AccountClients interface {
	Account() *AccountService
	ManagementAccounts() *ManagementAccountsService
}

// AuthClient provides the hosted-authentication helpers an application uses
// to connect user accounts.
type AuthClient interface {
	AuthenticationURL(opts AuthenticateOptions) (string, error)
	ExchangeCodeForToken(ctx context.Context, code string) (*TokenResponse, error)
	RevokeToken(ctx context.Context) error
}

// Client is the full API surface. Construct one with the nylasclient
// package.
type Client interface {
	MailClients
	CalendarClients
	AccountClients
	AuthClient

	// Requester exposes the underlying dispatcher for endpoints not wrapped
	// by a service.
	Requester() Requester
}

// AuthenticateOptions shape the hosted-authentication redirect URL.
type AuthenticateOptions struct {
	RedirectURI string
	LoginHint   string
	State       string
	Scopes      []string
}

// TokenResponse is the result of exchanging an authorization code for an
// access token.
type TokenResponse struct {
	AccessToken  string `json:"access_token"  yaml:"access_token"`
	AccountID    string `json:"account_id"    yaml:"account_id"`
	EmailAddress string `json:"email_address" yaml:"email_address"`
	Provider     string `json:"provider"      yaml:"provider"`
	TokenType    string `json:"token_type"    yaml:"token_type"`
}

// Config represents client configuration for building a nylas.Client.
//
// # Authentication
//
// Requests authenticate with HTTP basic auth, username only: the AccessToken
// for ordinary resource paths, the ClientSecret for application-management
// paths under /a/. A client built with only application credentials can still
// use the management and OAuth surfaces; a client built with only an access
// token covers everything under a single account.
//
// # Transport
//
// The low-level HTTP transport is injectable via HTTPClient; when nil a
// default client with DefaultHTTPTimeout is used. The client performs no
// caching and never retries a request on its own.
type Config struct {
	// BaseURL: API server base URL. The constructor normalizes it by
	// trimming a trailing slash and defaulting the scheme to https; empty
	// means the production API.
	BaseURL string

	// ClientID: the application's client id, sent as X-Nylas-Client-Id.
	ClientID string
	// ClientSecret: the application's client secret, used as the basic-auth
	// username on /a/ paths and for the OAuth code exchange.
	ClientSecret string
	// AccessToken: a connected account's access token, used as the
	// basic-auth username everywhere else.
	AccessToken string

	// HTTPTimeout: timeout applied to the default transport. Ignored when
	// HTTPClient is set; per-request deadlines belong on the context.
	HTTPTimeout time.Duration
	// Debug: enables request/response logging through Logger.
	Debug bool
	// Logger: optional structured logger. Defaults to NoopLogger.
	Logger Logger
	// UserAgent: overrides the default "<sdk-name> v<version>" header value.
	UserAgent string
	// HTTPClient: optional injected transport.
	HTTPClient *http.Client

	// SDKVersion and APIVersion override the compiled-in SDK version and
	// supported API version strings. Used by the version-skew warning and
	// the identification headers; leave empty for the defaults.
	SDKVersion string
	APIVersion string
}

// WithLogger sets the structured logger.
func (c *Config) WithLogger(logger Logger) *Config {
	c.Logger = logger

	return c
}

// WithDebug enables request/response logging through the logger.
func (c *Config) WithDebug() *Config {
	c.Debug = true

	return c
}

// WithUserAgent overrides the User-Agent header value.
func (c *Config) WithUserAgent(userAgent string) *Config {
	c.UserAgent = userAgent

	return c
}

// WithHTTPClient injects the low-level HTTP transport.
func (c *Config) WithHTTPClient(httpClient *http.Client) *Config {
	c.HTTPClient = httpClient

	return c
}

// WithTimeout sets the default transport's timeout. It has no effect when a
// transport is injected with WithHTTPClient.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.HTTPTimeout = timeout

	return c
}
