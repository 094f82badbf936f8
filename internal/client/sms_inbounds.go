package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// SMSInboundsClient implements mailersend.SMSInboundsClient.
type SMSInboundsClient struct {
	httpClient *http.Client
}

// NewSMSInboundsClient creates a new SMS inbound routes client.
func NewSMSInboundsClient(httpClient *http.Client) *SMSInboundsClient {
	return &SMSInboundsClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMSInboundsClient.List.
func (c *SMSInboundsClient) List(ctx context.Context, req *mailersend.SMSInboundListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSMSInbounds, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMS inbound routes: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMSInboundsClient.Get.
func (c *SMSInboundsClient) Get(ctx context.Context, req *mailersend.SMSInboundRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSInbounds, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMS inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.SMSInboundsClient.Create.
func (c *SMSInboundsClient) Create(ctx context.Context, req *mailersend.SMSInboundCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathSMSInbounds, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating SMS inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.SMSInboundsClient.Update.
func (c *SMSInboundsClient) Update(ctx context.Context, req *mailersend.SMSInboundUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSInbounds, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating SMS inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.SMSInboundsClient.Delete.
func (c *SMSInboundsClient) Delete(ctx context.Context, req *mailersend.SMSInboundRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSInbounds, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting SMS inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}
