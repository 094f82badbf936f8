package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// RecipientsClient implements mailersend.RecipientsClient.
type RecipientsClient struct {
	httpClient *http.Client
}

// NewRecipientsClient creates a new recipients client.
func NewRecipientsClient(httpClient *http.Client) *RecipientsClient {
	return &RecipientsClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.RecipientsClient.List.
func (c *RecipientsClient) List(ctx context.Context, req *mailersend.RecipientListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathRecipients, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.RecipientsClient.Get.
func (c *RecipientsClient) Get(ctx context.Context, req *mailersend.RecipientRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathRecipients, req.RecipientID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting recipient: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.RecipientsClient.Delete.
func (c *RecipientsClient) Delete(ctx context.Context, req *mailersend.RecipientRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathRecipients, req.RecipientID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting recipient: %w", err)
	}

	return toEnvelope(resp), nil
}

// ListSuppressions implements mailersend.RecipientsClient.ListSuppressions.
func (c *RecipientsClient) ListSuppressions(ctx context.Context, req *mailersend.SuppressionListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSuppressions, string(req.Kind()))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", req.Kind(), err)
	}

	return toEnvelope(resp), nil
}

// AddSuppressions implements mailersend.RecipientsClient.AddSuppressions.
func (c *RecipientsClient) AddSuppressions(ctx context.Context, req *mailersend.SuppressionAddRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSuppressions, string(req.Kind()))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("adding to %s: %w", req.Kind(), err)
	}

	return toEnvelope(resp), nil
}

// DeleteSuppressions implements mailersend.RecipientsClient.DeleteSuppressions.
// The entries to remove travel in the body of the DELETE request.
func (c *RecipientsClient) DeleteSuppressions(ctx context.Context, req *mailersend.SuppressionDeleteRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSuppressions, string(req.Kind()))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("deleting from %s: %w", req.Kind(), err)
	}

	return toEnvelope(resp), nil
}
