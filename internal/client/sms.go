package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// SMSClient implements mailersend.SMSClient.
type SMSClient struct {
	httpClient *http.Client
}

// NewSMSClient creates a new SMS sending client.
func NewSMSClient(httpClient *http.Client) *SMSClient {
	return &SMSClient{
		httpClient: httpClient,
	}
}

// Send implements mailersend.SMSClient.Send.
func (c *SMSClient) Send(ctx context.Context, req *mailersend.SMSRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathSMS, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("sending SMS: %w", err)
	}

	return toEnvelope(resp), nil
}

// SMSActivityClient implements mailersend.SMSActivityClient.
type SMSActivityClient struct {
	httpClient *http.Client
}

// NewSMSActivityClient creates a new SMS activity client.
func NewSMSActivityClient(httpClient *http.Client) *SMSActivityClient {
	return &SMSActivityClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMSActivityClient.List.
func (c *SMSActivityClient) List(ctx context.Context, req *mailersend.SMSActivityListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSMSActivity, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMS activity: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMSActivityClient.Get. Activity for one message
// is served by the SMS messages endpoint.
func (c *SMSActivityClient) Get(ctx context.Context, req *mailersend.SMSMessageRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSMessages, req.MessageID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMS message activity: %w", err)
	}

	return toEnvelope(resp), nil
}

// SMSMessagesClient implements mailersend.SMSMessagesClient.
type SMSMessagesClient struct {
	httpClient *http.Client
}

// NewSMSMessagesClient creates a new SMS messages client.
func NewSMSMessagesClient(httpClient *http.Client) *SMSMessagesClient {
	return &SMSMessagesClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMSMessagesClient.List.
func (c *SMSMessagesClient) List(ctx context.Context, req *mailersend.SMSMessageListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSMSMessages, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMS messages: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMSMessagesClient.Get.
func (c *SMSMessagesClient) Get(ctx context.Context, req *mailersend.SMSMessageRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSMSMessages, req.MessageID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMS message: %w", err)
	}

	return toEnvelope(resp), nil
}
