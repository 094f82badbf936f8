package mailersend

import (
	"net/url"
	"strings"
)

// SMS webhook events.
const (
	EventSMSSent      = "sms.sent"
	EventSMSDelivered = "sms.delivered"
	EventSMSFailed    = "sms.failed"
)

// SMSWebhookEvents lists every SMS webhook event.
var SMSWebhookEvents = []string{EventSMSSent, EventSMSDelivered, EventSMSFailed}

// SMSWebhookListRequest lists the webhooks of an SMS number.
type SMSWebhookListRequest struct {
	listQuery
}

// SMSWebhookRequest identifies one SMS webhook.
type SMSWebhookRequest struct {
	webhookID string
}

// WebhookID returns the webhook identifier.
func (r *SMSWebhookRequest) WebhookID() string {
	return r.webhookID
}

// SMSWebhookCreateRequest creates an SMS webhook.
type SMSWebhookCreateRequest struct {
	jsonBody
}

// SMSWebhookUpdateRequest updates an SMS webhook.
type SMSWebhookUpdateRequest struct {
	jsonBody
	SMSWebhookRequest
}

// SMSWebhooksBuilder assembles SMS webhook requests.
type SMSWebhooksBuilder struct {
	builder
	webhookFields

	webhookID string
	numberID  string
}

// NewSMSWebhooksBuilder creates an SMS webhooks builder.
func NewSMSWebhooksBuilder() *SMSWebhooksBuilder {
	return &SMSWebhooksBuilder{}
}

// WebhookID addresses an existing webhook.
func (b *SMSWebhooksBuilder) WebhookID(id string) *SMSWebhooksBuilder {
	if b.checkNotEmpty("sms_webhook_id", id) {
		b.webhookID = strings.TrimSpace(id)
	}

	return b
}

// SMSNumberID sets the number, required for list and create.
func (b *SMSWebhooksBuilder) SMSNumberID(id string) *SMSWebhooksBuilder {
	if b.checkNotEmpty("sms_number_id", id) {
		b.numberID = strings.TrimSpace(id)
	}

	return b
}

// URL sets the endpoint receiving events.
func (b *SMSWebhooksBuilder) URL(endpoint string) *SMSWebhooksBuilder {
	b.setURL(&b.builder, endpoint)

	return b
}

// Name sets the webhook name.
func (b *SMSWebhooksBuilder) Name(name string) *SMSWebhooksBuilder {
	b.setName(&b.builder, name)

	return b
}

// Events subscribes to events.
func (b *SMSWebhooksBuilder) Events(events ...string) *SMSWebhooksBuilder {
	b.addEvents(&b.builder, SMSWebhookEvents, events)

	return b
}

// Enabled toggles delivery.
func (b *SMSWebhooksBuilder) Enabled(enabled bool) *SMSWebhooksBuilder {
	if !b.failed() {
		b.enabled = boolPtr(enabled)
	}

	return b
}

// BuildList returns the list request. The SMS number ID is required.
func (b *SMSWebhooksBuilder) BuildList() (*SMSWebhookListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_number_id", b.numberID); err != nil {
		return nil, err
	}

	return &SMSWebhookListRequest{listQuery{query: url.Values{"sms_number_id": {b.numberID}}}}, nil
}

// BuildGet returns the request for one webhook. Delete accepts it too.
func (b *SMSWebhooksBuilder) BuildGet() (*SMSWebhookRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_webhook_id", b.webhookID); err != nil {
		return nil, err
	}

	return &SMSWebhookRequest{webhookID: b.webhookID}, nil
}

// BuildCreate returns the create request. URL, name, events and SMS number
// ID are required.
func (b *SMSWebhooksBuilder) BuildCreate() (*SMSWebhookCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.requireCreate(); err != nil {
		return nil, err
	}

	if err := requireSet("sms_number_id", b.numberID); err != nil {
		return nil, err
	}

	body := b.body()
	body["sms_number_id"] = b.numberID

	return &SMSWebhookCreateRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdate returns the update request. Only set fields are sent.
func (b *SMSWebhooksBuilder) BuildUpdate() (*SMSWebhookUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	body := b.body()
	if len(body) == 0 {
		return nil, &ValidationError{Field: "webhook", Reason: "at least one field to update is required"}
	}

	return &SMSWebhookUpdateRequest{jsonBody: jsonBody{body: body}, SMSWebhookRequest: *target}, nil
}
