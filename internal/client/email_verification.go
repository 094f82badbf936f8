package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// EmailVerificationClient implements mailersend.EmailVerificationClient.
type EmailVerificationClient struct {
	httpClient *http.Client
}

// NewEmailVerificationClient creates a new email verification client.
func NewEmailVerificationClient(httpClient *http.Client) *EmailVerificationClient {
	return &EmailVerificationClient{
		httpClient: httpClient,
	}
}

// Verify implements mailersend.EmailVerificationClient.Verify.
func (c *EmailVerificationClient) Verify(ctx context.Context, req *mailersend.VerifyEmailRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathEmailVerification+"/verify", req.Payload())
	if err != nil {
		return nil, fmt.Errorf("verifying email: %w", err)
	}

	return toEnvelope(resp), nil
}

// VerifyAsync implements mailersend.EmailVerificationClient.VerifyAsync.
func (c *EmailVerificationClient) VerifyAsync(ctx context.Context, req *mailersend.VerifyEmailAsyncRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathEmailVerification+"/verify-async", req.Payload())
	if err != nil {
		return nil, fmt.Errorf("verifying email asynchronously: %w", err)
	}

	return toEnvelope(resp), nil
}

// GetAsyncStatus implements mailersend.EmailVerificationClient.GetAsyncStatus.
func (c *EmailVerificationClient) GetAsyncStatus(ctx context.Context, req *mailersend.VerifyAsyncStatusRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathEmailVerification+"/verify-async", req.VerificationID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting async verification status: %w", err)
	}

	return toEnvelope(resp), nil
}

// List implements mailersend.EmailVerificationClient.List.
func (c *EmailVerificationClient) List(ctx context.Context, req *mailersend.VerificationListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathEmailVerification, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing verification lists: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.EmailVerificationClient.Get.
func (c *EmailVerificationClient) Get(ctx context.Context, req *mailersend.VerificationRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathEmailVerification, req.VerificationID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting verification list: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.EmailVerificationClient.Create.
func (c *EmailVerificationClient) Create(ctx context.Context, req *mailersend.VerificationCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathEmailVerification, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating verification list: %w", err)
	}

	return toEnvelope(resp), nil
}

// VerifyList implements mailersend.EmailVerificationClient.VerifyList.
func (c *EmailVerificationClient) VerifyList(ctx context.Context, req *mailersend.VerificationRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathEmailVerification, req.VerificationID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+"/verify", nil)
	if err != nil {
		return nil, fmt.Errorf("verifying list: %w", err)
	}

	return toEnvelope(resp), nil
}

// GetResults implements mailersend.EmailVerificationClient.GetResults.
func (c *EmailVerificationClient) GetResults(ctx context.Context, req *mailersend.VerificationResultsRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathEmailVerification, req.VerificationID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+"/results", req.Query())
	if err != nil {
		return nil, fmt.Errorf("getting verification results: %w", err)
	}

	return toEnvelope(resp), nil
}
