package nylas

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// RequestError represents an error response from the API.
type RequestError struct {
	Message       string   `json:"message"                  yaml:"message"`
	MissingFields []string `json:"missing_fields,omitempty" yaml:"missing_fields,omitempty"`
	ServerError   string   `json:"server_error,omitempty"   yaml:"server_error,omitempty"`
	StatusCode    int      `json:"-"                        yaml:"-"`
}

// Error implements the error interface. The message is the server's own,
// augmented with any missing-field and server-error detail the body carried.
func (e *RequestError) Error() string {
	msg := e.Message
	if len(e.MissingFields) > 0 {
		msg = fmt.Sprintf("%s (missing fields: %s)", msg, strings.Join(e.MissingFields, ", "))
	}

	if e.ServerError != "" {
		msg = fmt.Sprintf("%s (server error: %s)", msg, e.ServerError)
	}

	return msg
}

// ParseRequestError builds a RequestError from a non-2xx response body.
// Bodies that are not JSON or carry no message fall back to the standard
// status text, so the caller always gets something readable.
func ParseRequestError(statusCode int, body []byte) *RequestError {
	reqErr := &RequestError{StatusCode: statusCode}

	if err := json.Unmarshal(body, reqErr); err != nil {
		reqErr.Message = http.StatusText(statusCode)

		return reqErr
	}

	if reqErr.Message == "" {
		reqErr.Message = http.StatusText(statusCode)
	}

	return reqErr
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrAccessTokenRequired  = errors.New("access token is required")
	ErrClientSecretRequired = errors.New("client secret is required")
	ErrClientIDRequired     = errors.New("client id is required")
	ErrRedirectURIRequired  = errors.New("redirect URI is required")
	ErrAuthCodeRequired     = errors.New("authorization code is required")
	ErrMissingID            = errors.New("id is required")
	ErrIncompatibleView     = errors.New("view is incompatible with this operation")
	ErrNilModel             = errors.New("model is required")
)

// IsNotFound checks if the error is a not-found response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate-limit response.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsUsageError checks if the error is a client-side precondition violation,
// reported before any request was sent.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingID) || errors.Is(err, ErrIncompatibleView) || errors.Is(err, ErrNilModel)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
