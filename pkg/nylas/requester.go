package nylas

import (
	"context"
	"net/http"
	"net/url"
)

// Request describes one API request handed to the dispatcher. Path is
// relative to the configured base URL; Query and Headers are optional; Body
// is JSON-encoded when non-nil.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// Download skips response body parsing and hands back the raw
	// *http.Response, for endpoints that stream file or MIME content.
	Download bool
}

// Response is the dispatcher's view of an API response. Body is the fully
// read payload, except for Download requests, where Raw carries the live
// response and the caller owns closing its body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Raw        *http.Response
}

// Requester issues one API request and classifies the outcome. It resolves
// the full URL against the configured base, selects basic-auth credentials
// (the client secret for application-management paths under /a/, the access
// token everywhere else), attaches the SDK identification headers, and turns
// any status above 299 into a *RequestError while still returning the
// response. The concrete implementation lives in internal/http.
type Requester interface {
	Do(ctx context.Context, req *Request) (*Response, error)
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error)
	Put(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error)
	Delete(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error)
}
