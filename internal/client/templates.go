package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// TemplatesClient implements mailersend.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context, req *mailersend.TemplateListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathTemplates, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, req *mailersend.TemplateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTemplates, req.TemplateID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, req *mailersend.TemplateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTemplates, req.TemplateID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	return toEnvelope(resp), nil
}
