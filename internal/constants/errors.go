package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'mailersend config set-token' or set MAILERSEND_API_KEY")
	ErrEmptyToken         = errors.New("token cannot be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Transport errors.
var (
	ErrNilRequest = errors.New("request is required")
	ErrEncodeBody = errors.New("failed to encode request body")
	ErrReadBody   = errors.New("failed to read response body")
	ErrMissingID  = errors.New("resource identifier is required")
)

// CLI errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidBreakdown    = errors.New("invalid breakdown, expected country, ua-name or ua-type")
	ErrRequestFailed       = errors.New("request failed")
	ErrNotATerminal        = errors.New("stdin is not a terminal, pass the token as an argument")
)
