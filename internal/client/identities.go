package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// IdentitiesClient implements mailersend.IdentitiesClient.
type IdentitiesClient struct {
	httpClient *http.Client
}

// NewIdentitiesClient creates a new sender identities client.
func NewIdentitiesClient(httpClient *http.Client) *IdentitiesClient {
	return &IdentitiesClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.IdentitiesClient.List.
func (c *IdentitiesClient) List(ctx context.Context, req *mailersend.IdentityListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathIdentities, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing identities: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.IdentitiesClient.Create.
func (c *IdentitiesClient) Create(ctx context.Context, req *mailersend.IdentityCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathIdentities, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating identity: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.IdentitiesClient.Get.
func (c *IdentitiesClient) Get(ctx context.Context, req *mailersend.IdentityRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := identityPath(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting identity: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.IdentitiesClient.Update.
func (c *IdentitiesClient) Update(ctx context.Context, req *mailersend.IdentityUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := identityPath(&req.IdentityRequest)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating identity: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.IdentitiesClient.Delete.
func (c *IdentitiesClient) Delete(ctx context.Context, req *mailersend.IdentityRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := identityPath(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting identity: %w", err)
	}

	return toEnvelope(resp), nil
}

// identityPath addresses an identity by id, or by email under identities/email.
func identityPath(req *mailersend.IdentityRequest) (string, error) {
	if req.ByEmail() {
		return resourcePath(constants.PathIdentities, "email", req.Email())
	}

	return resourcePath(constants.PathIdentities, req.IdentityID())
}
