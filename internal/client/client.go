// Package client assembles the dispatcher and the per-resource services
// into the public Client interface.
package client

import (
	"github.com/Towerism/nylas-go/internal/http"
	"github.com/Towerism/nylas-go/pkg/nylas"
)

// Client implements the nylas.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	config     *nylas.Config
	logger     nylas.Logger

	// Resource services
	calendars          *nylas.CalendarsService
	events             *nylas.EventsService
	messages           *nylas.MessagesService
	threads            *nylas.ThreadsService
	drafts             *nylas.DraftsService
	labels             *nylas.LabelsService
	folders            *nylas.FoldersService
	files              *nylas.FilesService
	account            *nylas.AccountService
	managementAccounts *nylas.ManagementAccountsService
}

// createHTTPClientOptions builds dispatcher options from config.
func createHTTPClientOptions(config *nylas.Config) []http.Option {
	opts := []http.Option{
		http.WithAccessToken(config.AccessToken),
		http.WithClientID(config.ClientID),
		http.WithClientSecret(config.ClientSecret),
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.SDKVersion != "" || config.APIVersion != "" {
		opts = append(opts, http.WithVersions(config.SDKVersion, config.APIVersion))
	}

	return opts
}

// New creates an API client from the config. The base URL must already be
// validated and normalized.
func New(config *nylas.Config) (*Client, error) {
	if config == nil {
		return nil, nylas.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, nylas.ErrBaseURLRequired
	}

	logger := config.Logger
	if logger == nil {
		logger = nylas.NoopLogger{}
	}

	client := &Client{
		httpClient: http.NewClient(config.BaseURL, createHTTPClientOptions(config)...),
		baseURL:    config.BaseURL,
		config:     config,
		logger:     logger,
	}

	client.initializeServices()

	return client, nil
}

// initializeServices initializes all resource-specific services.
func (c *Client) initializeServices() {
	c.calendars = nylas.NewCalendarsService(c.httpClient)
	c.events = nylas.NewEventsService(c.httpClient)
	c.messages = nylas.NewMessagesService(c.httpClient)
	c.threads = nylas.NewThreadsService(c.httpClient)
	c.drafts = nylas.NewDraftsService(c.httpClient)
	c.labels = nylas.NewLabelsService(c.httpClient)
	c.folders = nylas.NewFoldersService(c.httpClient)
	c.files = nylas.NewFilesService(c.httpClient)
	c.account = nylas.NewAccountService(c.httpClient)
	c.managementAccounts = nylas.NewManagementAccountsService(c.httpClient, c.config.ClientID)
}

// Resource service accessors

// Calendars implements nylas.Client.Calendars.
func (c *Client) Calendars() *nylas.CalendarsService {
	return c.calendars
}

// Events implements nylas.Client.Events.
func (c *Client) Events() *nylas.EventsService {
	return c.events
}

// Messages implements nylas.Client.Messages.
func (c *Client) Messages() *nylas.MessagesService {
	return c.messages
}

// Threads implements nylas.Client.Threads.
func (c *Client) Threads() *nylas.ThreadsService {
	return c.threads
}

// Drafts implements nylas.Client.Drafts.
func (c *Client) Drafts() *nylas.DraftsService {
	return c.drafts
}

// Labels implements nylas.Client.Labels.
func (c *Client) Labels() *nylas.LabelsService {
	return c.labels
}

// Folders implements nylas.Client.Folders.
func (c *Client) Folders() *nylas.FoldersService {
	return c.folders
}

// Files implements nylas.Client.Files.
func (c *Client) Files() *nylas.FilesService {
	return c.files
}

// Account implements nylas.Client.Account.
func (c *Client) Account() *nylas.AccountService {
	return c.account
}

// ManagementAccounts implements nylas.Client.ManagementAccounts.
func (c *Client) ManagementAccounts() *nylas.ManagementAccountsService {
	return c.managementAccounts
}

// Requester exposes the dispatcher for raw calls against endpoints the
// typed services do not cover.
func (c *Client) Requester() nylas.Requester {
	return c.httpClient
}

var _ nylas.Client = (*Client)(nil)
