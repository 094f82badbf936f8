package constants

import "time"

// Version is reported in the default User-Agent.
const Version = "0.1.0"

// UserAgentPrefix is the product token of the default User-Agent.
const UserAgentPrefix = "mailersend-go/"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// DefaultHTTPTimeout is the default per-attempt timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Retry limits. Retries are off unless a caller opts in.
const (
	// DefaultRetryMax disables retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second

	// CLIThrottleRetries bounds the CLI --retry-throttled loop.
	CLIThrottleRetries = 3
)

// HTTP headers.
const (
	// HeaderAuthorization carries the bearer API key.
	HeaderAuthorization = "Authorization"

	// HeaderAccept is always application/json.
	HeaderAccept = "Accept"

	// HeaderContentType is set when a body is sent.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// MediaTypeJSON is the only media type the API speaks.
	MediaTypeJSON = "application/json"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedKeyVisible is how many trailing key characters stay visible.
	MaskedKeyVisible = 4

	// DescriptionDisplayLength is the length for truncated table cells.
	DescriptionDisplayLength = 60
)

// CLI configuration.
const (
	// ConfigDirName is created under the user home directory.
	ConfigDirName = ".mailersend"

	// ConfigFileName is the config file base name, without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment overrides, e.g. MAILERSEND_API_KEY.
	EnvPrefix = "MAILERSEND"
)

// API paths, relative to the base URL.
const (
	PathEmail             = "email"
	PathBulkEmail         = "bulk-email"
	PathEmailVerification = "email-verification"
	PathActivity          = "activity"
	PathActivities        = "activities"
	PathAnalytics         = "analytics"
	PathDomains           = "domains"
	PathIdentities        = "identities"
	PathInbound           = "inbound"
	PathMessages          = "messages"
	PathSchedules         = "message-schedules"
	PathRecipients        = "recipients"
	PathSuppressions      = "suppressions"
	PathTokens            = "token"
	PathTemplates         = "templates"
	PathWebhooks          = "webhooks"
	PathSMTPUsers         = "smtp-users"
	PathUsers             = "users"
	PathInvites           = "invites"
	PathSMS               = "sms"
	PathSMSActivity       = "sms-activity"
	PathSMSMessages       = "sms-messages"
	PathSMSNumbers        = "sms-numbers"
	PathSMSRecipients     = "sms-recipients"
	PathSMSWebhooks       = "sms-webhooks"
	PathSMSInbounds       = "sms-inbounds"
	PathAPIQuota          = "api-quota"
)
