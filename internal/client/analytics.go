package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// AnalyticsClient implements mailersend.AnalyticsClient.
type AnalyticsClient struct {
	httpClient *http.Client
}

// NewAnalyticsClient creates a new analytics client.
func NewAnalyticsClient(httpClient *http.Client) *AnalyticsClient {
	return &AnalyticsClient{
		httpClient: httpClient,
	}
}

// ByDate implements mailersend.AnalyticsClient.ByDate.
func (c *AnalyticsClient) ByDate(ctx context.Context, req *mailersend.AnalyticsDateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.get(ctx, "date", req.Query())
}

// OpensByCountry implements mailersend.AnalyticsClient.OpensByCountry.
func (c *AnalyticsClient) OpensByCountry(ctx context.Context, req *mailersend.AnalyticsOpensRequest) (*mailersend.Envelope, error) {
	return c.opens(ctx, "country", req)
}

// OpensByUserAgent implements mailersend.AnalyticsClient.OpensByUserAgent.
func (c *AnalyticsClient) OpensByUserAgent(ctx context.Context, req *mailersend.AnalyticsOpensRequest) (*mailersend.Envelope, error) {
	return c.opens(ctx, "ua-name", req)
}

// OpensByReadingEnvironment implements mailersend.AnalyticsClient.OpensByReadingEnvironment.
func (c *AnalyticsClient) OpensByReadingEnvironment(ctx context.Context, req *mailersend.AnalyticsOpensRequest) (*mailersend.Envelope, error) {
	return c.opens(ctx, "ua-type", req)
}

func (c *AnalyticsClient) opens(ctx context.Context, report string, req *mailersend.AnalyticsOpensRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	return c.get(ctx, report, req.Query())
}

func (c *AnalyticsClient) get(ctx context.Context, report string, query url.Values) (*mailersend.Envelope, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathAnalytics+"/"+report, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s analytics: %w", report, err)
	}

	return toEnvelope(resp), nil
}
