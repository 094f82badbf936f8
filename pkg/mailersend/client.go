package mailersend

import "context"

// Every resource client method performs exactly one HTTP exchange. Any HTTP
// response, successful or not, is returned as an Envelope with a nil error;
// the error is reserved for transport failures and invalid arguments.

// EmailsClient sends transactional email.
type EmailsClient interface {
	Send(ctx context.Context, req *EmailRequest) (*Envelope, error)
	SendBulk(ctx context.Context, req *BulkEmailRequest) (*Envelope, error)
	GetBulkStatus(ctx context.Context, req *BulkStatusRequest) (*Envelope, error)
}

// EmailVerificationClient verifies addresses and verification lists.
type EmailVerificationClient interface {
	Verify(ctx context.Context, req *VerifyEmailRequest) (*Envelope, error)
	VerifyAsync(ctx context.Context, req *VerifyEmailAsyncRequest) (*Envelope, error)
	GetAsyncStatus(ctx context.Context, req *VerifyAsyncStatusRequest) (*Envelope, error)
	List(ctx context.Context, req *VerificationListRequest) (*Envelope, error)
	Get(ctx context.Context, req *VerificationRequest) (*Envelope, error)
	Create(ctx context.Context, req *VerificationCreateRequest) (*Envelope, error)
	VerifyList(ctx context.Context, req *VerificationRequest) (*Envelope, error)
	GetResults(ctx context.Context, req *VerificationResultsRequest) (*Envelope, error)
}

// ActivityClient reads email activity.
type ActivityClient interface {
	List(ctx context.Context, req *ActivityListRequest) (*Envelope, error)
	Get(ctx context.Context, req *ActivityRequest) (*Envelope, error)
}

// AnalyticsClient reads aggregated email analytics.
type AnalyticsClient interface {
	ByDate(ctx context.Context, req *AnalyticsDateRequest) (*Envelope, error)
	OpensByCountry(ctx context.Context, req *AnalyticsOpensRequest) (*Envelope, error)
	OpensByUserAgent(ctx context.Context, req *AnalyticsOpensRequest) (*Envelope, error)
	OpensByReadingEnvironment(ctx context.Context, req *AnalyticsOpensRequest) (*Envelope, error)
}

// DomainsClient manages sending domains.
type DomainsClient interface {
	List(ctx context.Context, req *DomainListRequest) (*Envelope, error)
	Get(ctx context.Context, req *DomainRequest) (*Envelope, error)
	Create(ctx context.Context, req *DomainCreateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *DomainRequest) (*Envelope, error)
	Recipients(ctx context.Context, req *DomainRecipientsRequest) (*Envelope, error)
	UpdateSettings(ctx context.Context, req *DomainSettingsRequest) (*Envelope, error)
	DNSRecords(ctx context.Context, req *DomainRequest) (*Envelope, error)
	VerificationStatus(ctx context.Context, req *DomainRequest) (*Envelope, error)
}

// IdentitiesClient manages sender identities.
type IdentitiesClient interface {
	List(ctx context.Context, req *IdentityListRequest) (*Envelope, error)
	Create(ctx context.Context, req *IdentityCreateRequest) (*Envelope, error)
	Get(ctx context.Context, req *IdentityRequest) (*Envelope, error)
	Update(ctx context.Context, req *IdentityUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *IdentityRequest) (*Envelope, error)
}

// InboundClient manages inbound routes.
type InboundClient interface {
	List(ctx context.Context, req *InboundListRequest) (*Envelope, error)
	Get(ctx context.Context, req *InboundRequest) (*Envelope, error)
	Create(ctx context.Context, req *InboundCreateRequest) (*Envelope, error)
	Update(ctx context.Context, req *InboundUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *InboundRequest) (*Envelope, error)
}

// MessagesClient reads sent messages.
type MessagesClient interface {
	List(ctx context.Context, req *MessageListRequest) (*Envelope, error)
	Get(ctx context.Context, req *MessageRequest) (*Envelope, error)
}

// SchedulesClient manages scheduled messages.
type SchedulesClient interface {
	List(ctx context.Context, req *ScheduleListRequest) (*Envelope, error)
	Get(ctx context.Context, req *MessageRequest) (*Envelope, error)
	Delete(ctx context.Context, req *MessageRequest) (*Envelope, error)
}

// RecipientsClient manages recipients and suppression lists.
type RecipientsClient interface {
	List(ctx context.Context, req *RecipientListRequest) (*Envelope, error)
	Get(ctx context.Context, req *RecipientRequest) (*Envelope, error)
	Delete(ctx context.Context, req *RecipientRequest) (*Envelope, error)
	ListSuppressions(ctx context.Context, req *SuppressionListRequest) (*Envelope, error)
	AddSuppressions(ctx context.Context, req *SuppressionAddRequest) (*Envelope, error)
	DeleteSuppressions(ctx context.Context, req *SuppressionDeleteRequest) (*Envelope, error)
}

// TokensClient manages API tokens.
type TokensClient interface {
	List(ctx context.Context, req *TokenListRequest) (*Envelope, error)
	Get(ctx context.Context, req *TokenRequest) (*Envelope, error)
	Create(ctx context.Context, req *TokenCreateRequest) (*Envelope, error)
	UpdateStatus(ctx context.Context, req *TokenStatusRequest) (*Envelope, error)
	Rename(ctx context.Context, req *TokenRenameRequest) (*Envelope, error)
	Delete(ctx context.Context, req *TokenRequest) (*Envelope, error)
}

// TemplatesClient manages templates.
type TemplatesClient interface {
	List(ctx context.Context, req *TemplateListRequest) (*Envelope, error)
	Get(ctx context.Context, req *TemplateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *TemplateRequest) (*Envelope, error)
}

// WebhooksClient manages email webhooks.
type WebhooksClient interface {
	List(ctx context.Context, req *WebhookListRequest) (*Envelope, error)
	Get(ctx context.Context, req *WebhookRequest) (*Envelope, error)
	Create(ctx context.Context, req *WebhookCreateRequest) (*Envelope, error)
	Update(ctx context.Context, req *WebhookUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *WebhookRequest) (*Envelope, error)
}

// SMTPUsersClient manages the SMTP users of a domain.
type SMTPUsersClient interface {
	List(ctx context.Context, req *SMTPUserListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMTPUserRequest) (*Envelope, error)
	Create(ctx context.Context, req *SMTPUserCreateRequest) (*Envelope, error)
	Update(ctx context.Context, req *SMTPUserUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *SMTPUserRequest) (*Envelope, error)
}

// UsersClient manages account users and invites.
type UsersClient interface {
	List(ctx context.Context, req *UserListRequest) (*Envelope, error)
	Get(ctx context.Context, req *UserRequest) (*Envelope, error)
	Invite(ctx context.Context, req *UserInviteRequest) (*Envelope, error)
	Update(ctx context.Context, req *UserUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *UserRequest) (*Envelope, error)
	ListInvites(ctx context.Context, req *InviteListRequest) (*Envelope, error)
	GetInvite(ctx context.Context, req *InviteRequest) (*Envelope, error)
	ResendInvite(ctx context.Context, req *InviteRequest) (*Envelope, error)
	CancelInvite(ctx context.Context, req *InviteRequest) (*Envelope, error)
}

// SMSClient sends text messages.
type SMSClient interface {
	Send(ctx context.Context, req *SMSRequest) (*Envelope, error)
}

// SMSActivityClient reads SMS activity.
type SMSActivityClient interface {
	List(ctx context.Context, req *SMSActivityListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSMessageRequest) (*Envelope, error)
}

// SMSNumbersClient manages SMS phone numbers.
type SMSNumbersClient interface {
	List(ctx context.Context, req *SMSNumberListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSNumberRequest) (*Envelope, error)
	Update(ctx context.Context, req *SMSNumberUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *SMSNumberRequest) (*Envelope, error)
}

// SMSRecipientsClient manages SMS recipients.
type SMSRecipientsClient interface {
	List(ctx context.Context, req *SMSRecipientListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSRecipientRequest) (*Envelope, error)
	Update(ctx context.Context, req *SMSRecipientUpdateRequest) (*Envelope, error)
}

// SMSMessagesClient reads SMS messages.
type SMSMessagesClient interface {
	List(ctx context.Context, req *SMSMessageListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSMessageRequest) (*Envelope, error)
}

// SMSWebhooksClient manages SMS webhooks.
type SMSWebhooksClient interface {
	List(ctx context.Context, req *SMSWebhookListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSWebhookRequest) (*Envelope, error)
	Create(ctx context.Context, req *SMSWebhookCreateRequest) (*Envelope, error)
	Update(ctx context.Context, req *SMSWebhookUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *SMSWebhookRequest) (*Envelope, error)
}

// SMSInboundsClient manages SMS inbound routes.
type SMSInboundsClient interface {
	List(ctx context.Context, req *SMSInboundListRequest) (*Envelope, error)
	Get(ctx context.Context, req *SMSInboundRequest) (*Envelope, error)
	Create(ctx context.Context, req *SMSInboundCreateRequest) (*Envelope, error)
	Update(ctx context.Context, req *SMSInboundUpdateRequest) (*Envelope, error)
	Delete(ctx context.Context, req *SMSInboundRequest) (*Envelope, error)
}

// QuotaClient reads the API quota.
type QuotaClient interface {
	Get(ctx context.Context) (*Envelope, error)
}

// EmailClients provides access to email resource clients.
type EmailClients interface {
	Emails() EmailsClient
	EmailVerification() EmailVerificationClient
	Activity() ActivityClient
	Analytics() AnalyticsClient
	Messages() MessagesClient
	Schedules() SchedulesClient
	Templates() TemplatesClient
	Inbound() InboundClient
}

// AccountClients provides access to account and domain resource clients.
type AccountClients interface {
	Domains() DomainsClient
	Identities() IdentitiesClient
	Recipients() RecipientsClient
	Tokens() TokensClient
	Webhooks() WebhooksClient
	SMTPUsers() SMTPUsersClient
	Users() UsersClient
	Quota() QuotaClient
}

// SMSClients provides access to SMS resource clients.
type SMSClients interface {
	SMS() SMSClient
	SMSActivity() SMSActivityClient
	SMSNumbers() SMSNumbersClient
	SMSRecipients() SMSRecipientsClient
	SMSMessages() SMSMessagesClient
	SMSWebhooks() SMSWebhooksClient
	SMSInbounds() SMSInboundsClient
}

// Client is the main interface for the MailerSend API.
type Client interface {
	EmailClients
	AccountClients
	SMSClients
}
