package constants

import "errors"

// Configuration errors.
var (
	ErrAccessTokenRequired  = errors.New("access token is required, use 'nylas login' or --token")
	ErrClientSecretRequired = errors.New("client secret is required for application management commands")
	ErrClientIDRequired     = errors.New("client id is required for application management commands")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
)

// Command argument errors.
var (
	ErrRSVPStatusRequired   = errors.New("RSVP status must be yes, no, or maybe")
	ErrInspectTokenRequired = errors.New("an access token to inspect is required, use --access-token")
	ErrRecipientRequired    = errors.New("at least one recipient is required")
	ErrInvalidOutputFormat  = errors.New("output format must be table, json, or yaml")
)
