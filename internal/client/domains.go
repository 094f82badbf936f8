package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// DomainsClient implements mailersend.DomainsClient.
type DomainsClient struct {
	httpClient *http.Client
}

// NewDomainsClient creates a new domains client.
func NewDomainsClient(httpClient *http.Client) *DomainsClient {
	return &DomainsClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.DomainsClient.List.
func (c *DomainsClient) List(ctx context.Context, req *mailersend.DomainListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathDomains, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.DomainsClient.Get.
func (c *DomainsClient) Get(ctx context.Context, req *mailersend.DomainRequest) (*mailersend.Envelope, error) {
	return c.getDomain(ctx, req, "", "getting domain")
}

// Create implements mailersend.DomainsClient.Create.
func (c *DomainsClient) Create(ctx context.Context, req *mailersend.DomainCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathDomains, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating domain: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.DomainsClient.Delete.
func (c *DomainsClient) Delete(ctx context.Context, req *mailersend.DomainRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting domain: %w", err)
	}

	return toEnvelope(resp), nil
}

// Recipients implements mailersend.DomainsClient.Recipients.
func (c *DomainsClient) Recipients(ctx context.Context, req *mailersend.DomainRecipientsRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+"/recipients", req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing domain recipients: %w", err)
	}

	return toEnvelope(resp), nil
}

// UpdateSettings implements mailersend.DomainsClient.UpdateSettings.
func (c *DomainsClient) UpdateSettings(ctx context.Context, req *mailersend.DomainSettingsRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path+"/settings", req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating domain settings: %w", err)
	}

	return toEnvelope(resp), nil
}

// DNSRecords implements mailersend.DomainsClient.DNSRecords.
func (c *DomainsClient) DNSRecords(ctx context.Context, req *mailersend.DomainRequest) (*mailersend.Envelope, error) {
	return c.getDomain(ctx, req, "/dns-records", "getting domain DNS records")
}

// VerificationStatus implements mailersend.DomainsClient.VerificationStatus.
func (c *DomainsClient) VerificationStatus(ctx context.Context, req *mailersend.DomainRequest) (*mailersend.Envelope, error) {
	return c.getDomain(ctx, req, "/verify", "getting domain verification status")
}

func (c *DomainsClient) getDomain(ctx context.Context, req *mailersend.DomainRequest, suffix, action string) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+suffix, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return toEnvelope(resp), nil
}
