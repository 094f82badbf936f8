package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// webhookEndpoint performs the exchanges shared by email webhooks
// ("webhooks") and SMS webhooks ("sms-webhooks").
type webhookEndpoint struct {
	httpClient   *http.Client
	resourcePath string
	kind         string
}

func (e webhookEndpoint) list(ctx context.Context, query url.Values) (*mailersend.Envelope, error) {
	resp, err := e.httpClient.Get(ctx, e.resourcePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", e.kind, err)
	}

	return toEnvelope(resp), nil
}

func (e webhookEndpoint) get(ctx context.Context, id string) (*mailersend.Envelope, error) {
	path, err := resourcePath(e.resourcePath, id)
	if err != nil {
		return nil, err
	}

	resp, err := e.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", e.kind, err)
	}

	return toEnvelope(resp), nil
}

func (e webhookEndpoint) create(ctx context.Context, payload any) (*mailersend.Envelope, error) {
	resp, err := e.httpClient.Post(ctx, e.resourcePath, payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", e.kind, err)
	}

	return toEnvelope(resp), nil
}

func (e webhookEndpoint) update(ctx context.Context, id string, payload any) (*mailersend.Envelope, error) {
	path, err := resourcePath(e.resourcePath, id)
	if err != nil {
		return nil, err
	}

	resp, err := e.httpClient.Put(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", e.kind, err)
	}

	return toEnvelope(resp), nil
}

func (e webhookEndpoint) delete(ctx context.Context, id string) (*mailersend.Envelope, error) {
	path, err := resourcePath(e.resourcePath, id)
	if err != nil {
		return nil, err
	}

	resp, err := e.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", e.kind, err)
	}

	return toEnvelope(resp), nil
}

// WebhooksClient implements mailersend.WebhooksClient.
type WebhooksClient struct {
	endpoint webhookEndpoint
}

// NewWebhooksClient creates a new email webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		endpoint: webhookEndpoint{httpClient: httpClient, resourcePath: constants.PathWebhooks, kind: "webhook"},
	}
}

// List implements mailersend.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, req *mailersend.WebhookListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.list(ctx, req.Query())
}

// Get implements mailersend.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, req *mailersend.WebhookRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.get(ctx, req.WebhookID())
}

// Create implements mailersend.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, req *mailersend.WebhookCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.create(ctx, req.Payload())
}

// Update implements mailersend.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, req *mailersend.WebhookUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.update(ctx, req.WebhookID(), req.Payload())
}

// Delete implements mailersend.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, req *mailersend.WebhookRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.delete(ctx, req.WebhookID())
}

// SMSWebhooksClient implements mailersend.SMSWebhooksClient.
type SMSWebhooksClient struct {
	endpoint webhookEndpoint
}

// NewSMSWebhooksClient creates a new SMS webhooks client.
func NewSMSWebhooksClient(httpClient *http.Client) *SMSWebhooksClient {
	return &SMSWebhooksClient{
		endpoint: webhookEndpoint{httpClient: httpClient, resourcePath: constants.PathSMSWebhooks, kind: "SMS webhook"},
	}
}

// List implements mailersend.SMSWebhooksClient.List.
func (c *SMSWebhooksClient) List(ctx context.Context, req *mailersend.SMSWebhookListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.list(ctx, req.Query())
}

// Get implements mailersend.SMSWebhooksClient.Get.
func (c *SMSWebhooksClient) Get(ctx context.Context, req *mailersend.SMSWebhookRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.get(ctx, req.WebhookID())
}

// Create implements mailersend.SMSWebhooksClient.Create.
func (c *SMSWebhooksClient) Create(ctx context.Context, req *mailersend.SMSWebhookCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.create(ctx, req.Payload())
}

// Update implements mailersend.SMSWebhooksClient.Update.
func (c *SMSWebhooksClient) Update(ctx context.Context, req *mailersend.SMSWebhookUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.update(ctx, req.WebhookID(), req.Payload())
}

// Delete implements mailersend.SMSWebhooksClient.Delete.
func (c *SMSWebhooksClient) Delete(ctx context.Context, req *mailersend.SMSWebhookRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.endpoint.delete(ctx, req.WebhookID())
}
