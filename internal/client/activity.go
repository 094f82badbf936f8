package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// ActivityClient implements mailersend.ActivityClient.
type ActivityClient struct {
	httpClient *http.Client
}

// NewActivityClient creates a new activity client.
func NewActivityClient(httpClient *http.Client) *ActivityClient {
	return &ActivityClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.ActivityClient.List.
func (c *ActivityClient) List(ctx context.Context, req *mailersend.ActivityListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathActivity, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.ActivityClient.Get.
func (c *ActivityClient) Get(ctx context.Context, req *mailersend.ActivityRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathActivities, req.ActivityID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting activity: %w", err)
	}

	return toEnvelope(resp), nil
}
