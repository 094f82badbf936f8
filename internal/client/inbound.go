package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// InboundClient implements mailersend.InboundClient.
type InboundClient struct {
	httpClient *http.Client
}

// NewInboundClient creates a new inbound routes client.
func NewInboundClient(httpClient *http.Client) *InboundClient {
	return &InboundClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.InboundClient.List.
func (c *InboundClient) List(ctx context.Context, req *mailersend.InboundListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathInbound, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing inbound routes: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.InboundClient.Get.
func (c *InboundClient) Get(ctx context.Context, req *mailersend.InboundRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInbound, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.InboundClient.Create.
func (c *InboundClient) Create(ctx context.Context, req *mailersend.InboundCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathInbound, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.InboundClient.Update.
func (c *InboundClient) Update(ctx context.Context, req *mailersend.InboundUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInbound, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.InboundClient.Delete.
func (c *InboundClient) Delete(ctx context.Context, req *mailersend.InboundRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInbound, req.InboundID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting inbound route: %w", err)
	}

	return toEnvelope(resp), nil
}
