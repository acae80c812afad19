// Package http implements the API dispatcher: one place that builds,
// authenticates, executes, and classifies every request the SDK makes.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
)

// Client executes API requests against one base URL. It implements
// nylas.Requester.
type Client struct {
	httpClient   *retryablehttp.Client
	baseURL      string
	accessToken  string
	clientID     string
	clientSecret string
	userAgent    string
	sdkVersion   string
	apiVersion   string
	logger       nylas.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithAccessToken sets the per-account access token used as the basic auth
// username on regular paths.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithClientID sets the application client id, sent on every request.
func WithClientID(clientID string) Option {
	return func(c *Client) {
		c.clientID = clientID
	}
}

// WithClientSecret sets the application client secret used as the basic
// auth username on application-management paths.
func WithClientSecret(secret string) Option {
	return func(c *Client) {
		c.clientSecret = secret
	}
}

// WithLogger sets the logger.
func WithLogger(logger nylas.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient swaps the underlying HTTP client, keeping its transport
// and cookie configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithVersions overrides the SDK and supported API version strings stamped
// on outgoing requests.
func WithVersions(sdkVersion, apiVersion string) Option {
	return func(c *Client) {
		if sdkVersion != "" {
			c.sdkVersion = sdkVersion
		}

		if apiVersion != "" {
			c.apiVersion = apiVersion
		}
	}
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// The SDK never retries on its own; failures surface to the caller.
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		httpClient: retryClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		sdkVersion: constants.SDKVersion,
		apiVersion: constants.SupportedAPIVersion,
		logger:     nylas.NoopLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	// The default User-Agent reflects any SDK version override, so it is
	// built after the options run.
	if client.userAgent == "" {
		client.userAgent = fmt.Sprintf("%s v%s", constants.SDKName, client.sdkVersion)
	}

	return client
}

// Do executes one request: builds the URL, attaches auth and the fixed
// headers, and classifies the response. HTTP-level failures return a typed
// error alongside the parsed response so callers can inspect both.
func (c *Client) Do(ctx context.Context, req *nylas.Request) (*nylas.Response, error) {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var payload []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		payload = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req)

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    endpoint,
		})
	}

	c.warnOnVersionSkew(httpResp.Header)

	if httpResp.StatusCode > constants.MaxSuccessStatus {
		return c.errorResponse(httpResp)
	}

	if req.Download {
		return &nylas.Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Raw:        httpResp,
		}, nil
	}

	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &nylas.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*nylas.Response, error) {
	return c.Do(ctx, &nylas.Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return c.Do(ctx, &nylas.Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put executes a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return c.Do(ctx, &nylas.Request{Method: http.MethodPut, Path: path, Query: query, Body: body})
}

// Delete executes a DELETE request, optionally with a JSON body.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return c.Do(ctx, &nylas.Request{Method: http.MethodDelete, Path: path, Query: query, Body: body})
}

// setHeaders applies auth plus the fixed SDK headers, then lets the
// per-request headers override them.
func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *nylas.Request) {
	// Application-management paths authenticate with the client secret;
	// everything else uses the account's access token. The password is
	// always empty.
	username := c.accessToken
	if strings.HasPrefix(req.Path, constants.AdminPathPrefix) {
		username = c.clientSecret
	}

	httpReq.SetBasicAuth(username, "")

	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)
	httpReq.Header.Set(constants.HeaderSDKAPIVersion, c.apiVersion)
	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	if c.clientID != "" {
		httpReq.Header.Set(constants.HeaderClientID, c.clientID)
	}

	if req.Body != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// errorResponse drains the failed response and classifies it. The parsed
// response is returned alongside the error so callers can still reach the
// status and headers.
func (c *Client) errorResponse(httpResp *http.Response) (*nylas.Response, error) {
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading error response body: %w", err)
	}

	resp := &nylas.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	return resp, nylas.ParseRequestError(httpResp.StatusCode, body)
}

// warnOnVersionSkew compares the API version the server reports against the
// version this SDK supports and logs which side is behind. Skew is never an
// error.
func (c *Client) warnOnVersionSkew(headers http.Header) {
	serverVersion := headers.Get(constants.HeaderAPIVersion)
	if serverVersion == "" || serverVersion == c.apiVersion {
		return
	}

	fields := map[string]interface{}{
		"supported": c.apiVersion,
		"server":    serverVersion,
	}

	if versionLess(c.apiVersion, serverVersion) {
		c.logger.Warn("server speaks a newer API version; upgrade the SDK", fields)

		return
	}

	c.logger.Warn("SDK supports a newer API version than the server", fields)
}

// versionLess orders two dotted version strings numerically, falling back
// to lexicographic order when they do not parse.
func versionLess(a, b string) bool {
	av, errA := strconv.ParseFloat(a, 64)
	bv, errB := strconv.ParseFloat(b, 64)

	if errA != nil || errB != nil {
		return a < b
	}

	return av < bv
}

var _ nylas.Requester = (*Client)(nil)
