package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// TokensClient implements mailersend.TokensClient.
type TokensClient struct {
	httpClient *http.Client
}

// NewTokensClient creates a new API tokens client.
func NewTokensClient(httpClient *http.Client) *TokensClient {
	return &TokensClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.TokensClient.List.
func (c *TokensClient) List(ctx context.Context, req *mailersend.TokenListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathTokens, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing tokens: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.TokensClient.Get.
func (c *TokensClient) Get(ctx context.Context, req *mailersend.TokenRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTokens, req.TokenID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.TokensClient.Create.
func (c *TokensClient) Create(ctx context.Context, req *mailersend.TokenCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathTokens, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating token: %w", err)
	}

	return toEnvelope(resp), nil
}

// UpdateStatus implements mailersend.TokensClient.UpdateStatus.
func (c *TokensClient) UpdateStatus(ctx context.Context, req *mailersend.TokenStatusRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTokens, req.TokenID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path+"/settings", req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating token status: %w", err)
	}

	return toEnvelope(resp), nil
}

// Rename implements mailersend.TokensClient.Rename.
func (c *TokensClient) Rename(ctx context.Context, req *mailersend.TokenRenameRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTokens, req.TokenID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("renaming token: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.TokensClient.Delete.
func (c *TokensClient) Delete(ctx context.Context, req *mailersend.TokenRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathTokens, req.TokenID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting token: %w", err)
	}

	return toEnvelope(resp), nil
}
