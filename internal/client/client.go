package client

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/mailersend-go/internal/auth"
	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the mailersend.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       mailersend.Logger

	// Email resource clients
	emails            mailersend.EmailsClient
	emailVerification mailersend.EmailVerificationClient
	activity          mailersend.ActivityClient
	analytics         mailersend.AnalyticsClient
	messages          mailersend.MessagesClient
	schedules         mailersend.SchedulesClient
	templates         mailersend.TemplatesClient
	inbound           mailersend.InboundClient

	// Account resource clients
	domains    mailersend.DomainsClient
	identities mailersend.IdentitiesClient
	recipients mailersend.RecipientsClient
	tokens     mailersend.TokensClient
	webhooks   mailersend.WebhooksClient
	smtpUsers  mailersend.SMTPUsersClient
	users      mailersend.UsersClient
	quota      mailersend.QuotaClient

	// SMS resource clients
	sms           mailersend.SMSClient
	smsActivity   mailersend.SMSActivityClient
	smsNumbers    mailersend.SMSNumbersClient
	smsRecipients mailersend.SMSRecipientsClient
	smsMessages   mailersend.SMSMessagesClient
	smsWebhooks   mailersend.SMSWebhooksClient
	smsInbounds   mailersend.SMSInboundsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *mailersend.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new MailerSend API client. The API key is resolved from the
// config, the environment or the configured env file, in that order.
func New(ctx context.Context, config *mailersend.Config) (*Client, error) {
	if config == nil {
		return nil, mailersend.ErrConfigRequired
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	apiKey, err := auth.ResolveAPIKey(config.APIKey, config.EnvFile)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(apiKey))
}

// NewWithTokenManager creates a new MailerSend API client with a custom token
// manager, e.g. one that rotates keys.
func NewWithTokenManager(config *mailersend.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, mailersend.ErrConfigRequired
	}

	if tokenManager == nil {
		return nil, ErrNoTokenManagerConfigured
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = mailersend.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// initializeResourceClients initializes all resource clients.
func (c *Client) initializeResourceClients() {
	c.emails = NewEmailsClient(c.httpClient)
	c.emailVerification = NewEmailVerificationClient(c.httpClient)
	c.activity = NewActivityClient(c.httpClient)
	c.analytics = NewAnalyticsClient(c.httpClient)
	c.messages = NewMessagesClient(c.httpClient)
	c.schedules = NewSchedulesClient(c.httpClient)
	c.templates = NewTemplatesClient(c.httpClient)
	c.inbound = NewInboundClient(c.httpClient)

	c.domains = NewDomainsClient(c.httpClient)
	c.identities = NewIdentitiesClient(c.httpClient)
	c.recipients = NewRecipientsClient(c.httpClient)
	c.tokens = NewTokensClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.smtpUsers = NewSMTPUsersClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.quota = NewQuotaClient(c.httpClient)

	c.sms = NewSMSClient(c.httpClient)
	c.smsActivity = NewSMSActivityClient(c.httpClient)
	c.smsNumbers = NewSMSNumbersClient(c.httpClient)
	c.smsRecipients = NewSMSRecipientsClient(c.httpClient)
	c.smsMessages = NewSMSMessagesClient(c.httpClient)
	c.smsWebhooks = NewSMSWebhooksClient(c.httpClient)
	c.smsInbounds = NewSMSInboundsClient(c.httpClient)
}

// Resource client accessors

// Emails implements mailersend.Client.Emails.
func (c *Client) Emails() mailersend.EmailsClient {
	return c.emails
}

// EmailVerification implements mailersend.Client.EmailVerification.
func (c *Client) EmailVerification() mailersend.EmailVerificationClient {
	return c.emailVerification
}

// Activity implements mailersend.Client.Activity.
func (c *Client) Activity() mailersend.ActivityClient {
	return c.activity
}

// Analytics implements mailersend.Client.Analytics.
func (c *Client) Analytics() mailersend.AnalyticsClient {
	return c.analytics
}

// Messages implements mailersend.Client.Messages.
func (c *Client) Messages() mailersend.MessagesClient {
	return c.messages
}

// Schedules implements mailersend.Client.Schedules.
func (c *Client) Schedules() mailersend.SchedulesClient {
	return c.schedules
}

// Templates implements mailersend.Client.Templates.
func (c *Client) Templates() mailersend.TemplatesClient {
	return c.templates
}

// Inbound implements mailersend.Client.Inbound.
func (c *Client) Inbound() mailersend.InboundClient {
	return c.inbound
}

// Domains implements mailersend.Client.Domains.
func (c *Client) Domains() mailersend.DomainsClient {
	return c.domains
}

// Identities implements mailersend.Client.Identities.
func (c *Client) Identities() mailersend.IdentitiesClient {
	return c.identities
}

// Recipients implements mailersend.Client.Recipients.
func (c *Client) Recipients() mailersend.RecipientsClient {
	return c.recipients
}

// Tokens implements mailersend.Client.Tokens.
func (c *Client) Tokens() mailersend.TokensClient {
	return c.tokens
}

// Webhooks implements mailersend.Client.Webhooks.
func (c *Client) Webhooks() mailersend.WebhooksClient {
	return c.webhooks
}

// SMTPUsers implements mailersend.Client.SMTPUsers.
func (c *Client) SMTPUsers() mailersend.SMTPUsersClient {
	return c.smtpUsers
}

// Users implements mailersend.Client.Users.
func (c *Client) Users() mailersend.UsersClient {
	return c.users
}

// Quota implements mailersend.Client.Quota.
func (c *Client) Quota() mailersend.QuotaClient {
	return c.quota
}

// SMS implements mailersend.Client.SMS.
func (c *Client) SMS() mailersend.SMSClient {
	return c.sms
}

// SMSActivity implements mailersend.Client.SMSActivity.
func (c *Client) SMSActivity() mailersend.SMSActivityClient {
	return c.smsActivity
}

// SMSNumbers implements mailersend.Client.SMSNumbers.
func (c *Client) SMSNumbers() mailersend.SMSNumbersClient {
	return c.smsNumbers
}

// SMSRecipients implements mailersend.Client.SMSRecipients.
func (c *Client) SMSRecipients() mailersend.SMSRecipientsClient {
	return c.smsRecipients
}

// SMSMessages implements mailersend.Client.SMSMessages.
func (c *Client) SMSMessages() mailersend.SMSMessagesClient {
	return c.smsMessages
}

// SMSWebhooks implements mailersend.Client.SMSWebhooks.
func (c *Client) SMSWebhooks() mailersend.SMSWebhooksClient {
	return c.smsWebhooks
}

// SMSInbounds implements mailersend.Client.SMSInbounds.
func (c *Client) SMSInbounds() mailersend.SMSInboundsClient {
	return c.smsInbounds
}

var _ mailersend.Client = (*Client)(nil)
