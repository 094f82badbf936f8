package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// SMSNumbersClient implements mailersend.SMSNumbersClient.
type SMSNumbersClient struct {
	httpClient *http.Client
}

// NewSMSNumbersClient creates a new SMS numbers client.
func NewSMSNumbersClient(httpClient *http.Client) *SMSNumbersClient {
	return &SMSNumbersClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMSNumbersClient.List.
func (c *SMSNumbersClient) List(ctx context.Context, req *mailersend.SMSNumberListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSMSNumbers, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMS numbers: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMSNumbersClient.Get.
func (c *SMSNumbersClient) Get(ctx context.Context, req *mailersend.SMSNumberRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSNumbers, req.NumberID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMS number: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.SMSNumbersClient.Update.
func (c *SMSNumbersClient) Update(ctx context.Context, req *mailersend.SMSNumberUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSNumbers, req.NumberID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating SMS number: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.SMSNumbersClient.Delete.
func (c *SMSNumbersClient) Delete(ctx context.Context, req *mailersend.SMSNumberRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSNumbers, req.NumberID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting SMS number: %w", err)
	}

	return toEnvelope(resp), nil
}

// SMSRecipientsClient implements mailersend.SMSRecipientsClient.
type SMSRecipientsClient struct {
	httpClient *http.Client
}

// NewSMSRecipientsClient creates a new SMS recipients client.
func NewSMSRecipientsClient(httpClient *http.Client) *SMSRecipientsClient {
	return &SMSRecipientsClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMSRecipientsClient.List.
func (c *SMSRecipientsClient) List(ctx context.Context, req *mailersend.SMSRecipientListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSMSRecipients, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMS recipients: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMSRecipientsClient.Get.
func (c *SMSRecipientsClient) Get(ctx context.Context, req *mailersend.SMSRecipientRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSRecipients, req.RecipientID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMS recipient: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.SMSRecipientsClient.Update.
func (c *SMSRecipientsClient) Update(ctx context.Context, req *mailersend.SMSRecipientUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSRecipients, req.RecipientID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating SMS recipient: %w", err)
	}

	return toEnvelope(resp), nil
}
