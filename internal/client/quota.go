package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// QuotaClient implements mailersend.QuotaClient.
type QuotaClient struct {
	httpClient *http.Client
}

// NewQuotaClient creates a new API quota client.
func NewQuotaClient(httpClient *http.Client) *QuotaClient {
	return &QuotaClient{
		httpClient: httpClient,
	}
}

// Get implements mailersend.QuotaClient.Get.
func (c *QuotaClient) Get(ctx context.Context) (*mailersend.Envelope, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathAPIQuota, nil)
	if err != nil {
		return nil, fmt.Errorf("getting API quota: %w", err)
	}

	return toEnvelope(resp), nil
}
