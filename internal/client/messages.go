package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// MessagesClient implements mailersend.MessagesClient.
type MessagesClient struct {
	httpClient *http.Client
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(httpClient *http.Client) *MessagesClient {
	return &MessagesClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.MessagesClient.List.
func (c *MessagesClient) List(ctx context.Context, req *mailersend.MessageListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathMessages, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.MessagesClient.Get.
func (c *MessagesClient) Get(ctx context.Context, req *mailersend.MessageRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathMessages, req.MessageID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	return toEnvelope(resp), nil
}

// SchedulesClient implements mailersend.SchedulesClient.
type SchedulesClient struct {
	httpClient *http.Client
}

// NewSchedulesClient creates a new scheduled messages client.
func NewSchedulesClient(httpClient *http.Client) *SchedulesClient {
	return &SchedulesClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SchedulesClient.List.
func (c *SchedulesClient) List(ctx context.Context, req *mailersend.ScheduleListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathSchedules, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing scheduled messages: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SchedulesClient.Get.
func (c *SchedulesClient) Get(ctx context.Context, req *mailersend.MessageRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSchedules, req.MessageID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting scheduled message: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.SchedulesClient.Delete.
func (c *SchedulesClient) Delete(ctx context.Context, req *mailersend.MessageRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathSchedules, req.MessageID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting scheduled message: %w", err)
	}

	return toEnvelope(resp), nil
}
