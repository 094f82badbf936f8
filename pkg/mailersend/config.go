package mailersend

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the MailerSend API root used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.mailersend.com/v1"

// APIKeyEnv names the environment variable consulted when Config.APIKey is
// empty.
const APIKeyEnv = "MAILERSEND_API_KEY"

// Logger interface for client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a mailersend.Client.
//
// # API key precedence
//
// The concrete client (see pkg/msclient) resolves the key in this order:
//  1. APIKey, when non-empty.
//  2. The MAILERSEND_API_KEY environment variable.
//  3. MAILERSEND_API_KEY read from EnvFile, when EnvFile is set.
//
// Construction fails with ErrMissingAPIKey when none of them yields a key.
type Config struct {
	// APIKey: bearer token sent with every request.
	APIKey string
	// BaseURL: API root, DefaultBaseURL when empty. msclient.New trims a
	// trailing slash and adds "https://" if no scheme is present.
	BaseURL string
	// EnvFile: optional dotenv file holding MAILERSEND_API_KEY.
	EnvFile string

	// HTTPClient: optional http.Client, e.g. to install a custom transport or
	// proxy. HTTPTimeout is applied to it when set.
	HTTPClient *http.Client
	// HTTPTimeout: per-request timeout of the underlying http.Client. Zero
	// means 30 seconds; context deadlines still apply.
	HTTPTimeout time.Duration
	// RetryMax: retries for 429, >=500 and connection errors. Zero disables
	// retries, and the first response is returned as is.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
