package constants

import "time"

// SDK identity. Injected into the client configuration at construction;
// nothing reads these from ambient build metadata.
const (
	// SDKName identifies this SDK in the User-Agent header.
	SDKName = "nylas-go"

	// SDKVersion is the released version of this SDK.
	SDKVersion = "2.5.0"

	// SupportedAPIVersion is the API version this SDK speaks.
	SupportedAPIVersion = "2.1"
)

// Default endpoints.
const (
	// DefaultBaseURL is the production API server.
	DefaultBaseURL = "https://api.nylas.com"
)

// Header names used on every request or consumed from every response.
const (
	// HeaderUserAgent carries the SDK name and version.
	HeaderUserAgent = "User-Agent"

	// HeaderSDKAPIVersion advertises the API version the SDK supports.
	HeaderSDKAPIVersion = "Nylas-SDK-API-Version"

	// HeaderClientID carries the application's client id.
	HeaderClientID = "X-Nylas-Client-Id"

	// HeaderAPIVersion is the server-reported API version response header.
	HeaderAPIVersion = "Nylas-Api-Version"

	// HeaderContentType is the request body content type.
	HeaderContentType = "Content-Type"

	// HeaderAccept selects the response representation.
	HeaderAccept = "Accept"
)

// Content types.
const (
	// ContentTypeJSON is the default request/response body type.
	ContentTypeJSON = "application/json"

	// ContentTypeRFC822 selects the raw MIME form of a message.
	ContentTypeRFC822 = "message/rfc822"
)

// Fixed API paths.
const (
	// PathOAuthAuthorize starts the hosted authentication flow.
	PathOAuthAuthorize = "/oauth/authorize"

	// PathOAuthToken exchanges an authorization code for an access token.
	PathOAuthToken = "/oauth/token"

	// PathOAuthRevoke revokes the current access token.
	PathOAuthRevoke = "/oauth/revoke"

	// AdminPathPrefix marks application-management paths, which authenticate
	// with the client secret instead of an access token.
	AdminPathPrefix = "/a/"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the maximum number of transport retries. The client
	// never retries on its own, so this stays zero.
	DefaultRetryMax = 0
)

// HTTP status boundaries.
const (
	// MaxSuccessStatus is the highest status code treated as success.
	MaxSuccessStatus = 299
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formats.
const (
	// FormatTable renders results as a text table.
	FormatTable = "table"

	// FormatJSON renders results as indented JSON.
	FormatJSON = "json"

	// FormatYAML renders results as YAML.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// DefaultListLimit bounds list commands unless --limit says otherwise.
	DefaultListLimit = 50

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// SnippetDisplayLength truncates message snippets in table output.
	SnippetDisplayLength = 60

	// SubjectDisplayLength truncates subjects in table output.
	SubjectDisplayLength = 50
)
