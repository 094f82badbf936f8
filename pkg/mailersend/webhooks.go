package mailersend

import (
	"fmt"
	"net/url"
	"strings"
)

// Webhook events.
const (
	EventActivitySent            = "activity.sent"
	EventActivityDelivered       = "activity.delivered"
	EventActivitySoftBounced     = "activity.soft_bounced"
	EventActivityHardBounced     = "activity.hard_bounced"
	EventActivityOpened          = "activity.opened"
	EventActivityOpenedUnique    = "activity.opened_unique"
	EventActivityClicked         = "activity.clicked"
	EventActivityClickedUnique   = "activity.clicked_unique"
	EventActivityUnsubscribed    = "activity.unsubscribed"
	EventActivitySpamComplaint   = "activity.spam_complaint"
	EventActivitySurveyOpened    = "activity.survey_opened"
	EventActivitySurveySubmitted = "activity.survey_submitted"
	EventIdentityVerified        = "sender_identity.verified"
	EventMaintenanceStart        = "maintenance.start"
	EventMaintenanceEnd          = "maintenance.end"
	EventInboundForwardFailed    = "inbound_forward.failed"
	EventEmailSingleVerified     = "email_single.verified"
	EventEmailListVerified       = "email_list.verified"
	EventBulkEmailCompleted      = "bulk_email.completed"
)

// MaxWebhookField bounds webhook names and URLs.
const MaxWebhookField = 191

// WebhookEvents lists every email webhook event.
var WebhookEvents = []string{
	EventActivitySent, EventActivityDelivered, EventActivitySoftBounced, EventActivityHardBounced,
	EventActivityOpened, EventActivityOpenedUnique, EventActivityClicked, EventActivityClickedUnique,
	EventActivityUnsubscribed, EventActivitySpamComplaint, EventActivitySurveyOpened,
	EventActivitySurveySubmitted, EventIdentityVerified, EventMaintenanceStart, EventMaintenanceEnd,
	EventInboundForwardFailed, EventEmailSingleVerified, EventEmailListVerified, EventBulkEmailCompleted,
}

// WebhookListRequest lists the webhooks of a domain.
type WebhookListRequest struct {
	listQuery
}

// WebhookRequest identifies one webhook.
type WebhookRequest struct {
	webhookID string
}

// WebhookID returns the webhook identifier.
func (r *WebhookRequest) WebhookID() string {
	return r.webhookID
}

// WebhookCreateRequest creates a webhook.
type WebhookCreateRequest struct {
	jsonBody
}

// WebhookUpdateRequest updates a webhook.
type WebhookUpdateRequest struct {
	jsonBody
	WebhookRequest
}

// webhookFields is shared by the email and SMS webhook builders.
type webhookFields struct {
	url     string
	name    string
	events  []string
	enabled *bool
}

func (f *webhookFields) setURL(b *builder, value string) {
	value = strings.TrimSpace(value)
	if b.checkURL("url", value) &&
		b.check("url", value, fmt.Sprintf("max=%d", MaxWebhookField), "cannot exceed 191 characters") {
		f.url = value
	}
}

func (f *webhookFields) setName(b *builder, value string) {
	value = strings.TrimSpace(value)
	if b.checkNotEmpty("name", value) &&
		b.check("name", value, fmt.Sprintf("max=%d", MaxWebhookField), "cannot exceed 191 characters") {
		f.name = value
	}
}

func (f *webhookFields) addEvents(b *builder, allowed []string, events []string) {
	for _, event := range events {
		if !b.checkOneOf("events", event, allowed) {
			return
		}

		if !containsString(f.events, event) {
			f.events = append(f.events, event)
		}
	}
}

func (f *webhookFields) body() map[string]any {
	body := map[string]any{}

	if f.url != "" {
		body["url"] = f.url
	}

	if f.name != "" {
		body["name"] = f.name
	}

	if len(f.events) > 0 {
		body["events"] = stringsToAny(f.events)
	}

	if f.enabled != nil {
		body["enabled"] = *f.enabled
	}

	return body
}

func (f *webhookFields) requireCreate() error {
	if err := requireEach("url", f.url, "name", f.name); err != nil {
		return err
	}

	if len(f.events) == 0 {
		return &ValidationError{Field: "events", Reason: "at least one event is required"}
	}

	return nil
}

// WebhooksBuilder assembles email webhook requests.
type WebhooksBuilder struct {
	builder
	webhookFields

	webhookID string
	domainID  string
}

// NewWebhooksBuilder creates a webhooks builder.
func NewWebhooksBuilder() *WebhooksBuilder {
	return &WebhooksBuilder{}
}

// WebhookID addresses an existing webhook.
func (b *WebhooksBuilder) WebhookID(webhookID string) *WebhooksBuilder {
	if b.checkNotEmpty("webhook_id", webhookID) {
		b.webhookID = strings.TrimSpace(webhookID)
	}

	return b
}

// DomainID sets the domain, required for list and create.
func (b *WebhooksBuilder) DomainID(domainID string) *WebhooksBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = strings.TrimSpace(domainID)
	}

	return b
}

// URL sets the endpoint receiving events.
func (b *WebhooksBuilder) URL(endpoint string) *WebhooksBuilder {
	b.setURL(&b.builder, endpoint)

	return b
}

// Name sets the webhook name.
func (b *WebhooksBuilder) Name(name string) *WebhooksBuilder {
	b.setName(&b.builder, name)

	return b
}

// Events subscribes to events.
func (b *WebhooksBuilder) Events(events ...string) *WebhooksBuilder {
	b.addEvents(&b.builder, WebhookEvents, events)

	return b
}

// AllActivityEvents subscribes to every activity.* event.
func (b *WebhooksBuilder) AllActivityEvents() *WebhooksBuilder {
	var events []string

	for _, event := range WebhookEvents {
		if strings.HasPrefix(event, "activity.") {
			events = append(events, event)
		}
	}

	return b.Events(events...)
}

// Enabled toggles delivery.
func (b *WebhooksBuilder) Enabled(enabled bool) *WebhooksBuilder {
	if !b.failed() {
		b.enabled = boolPtr(enabled)
	}

	return b
}

// BuildList returns the list request. Domain ID is required.
func (b *WebhooksBuilder) BuildList() (*WebhookListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	return &WebhookListRequest{listQuery{query: url.Values{"domain_id": {b.domainID}}}}, nil
}

// BuildGet returns the request for one webhook. Delete accepts it too.
func (b *WebhooksBuilder) BuildGet() (*WebhookRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("webhook_id", b.webhookID); err != nil {
		return nil, err
	}

	return &WebhookRequest{webhookID: b.webhookID}, nil
}

// BuildCreate returns the create request. URL, name, events and domain ID
// are required.
func (b *WebhooksBuilder) BuildCreate() (*WebhookCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.requireCreate(); err != nil {
		return nil, err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	body := b.body()
	body["domain_id"] = b.domainID

	return &WebhookCreateRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdate returns the update request. Only set fields are sent.
func (b *WebhooksBuilder) BuildUpdate() (*WebhookUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	body := b.body()
	if len(body) == 0 {
		return nil, &ValidationError{Field: "webhook", Reason: "at least one field to update is required"}
	}

	return &WebhookUpdateRequest{jsonBody: jsonBody{body: body}, WebhookRequest: *target}, nil
}
