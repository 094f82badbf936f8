package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// SMTPUsersClient implements mailersend.SMTPUsersClient. SMTP users live
// under domains/{domain_id}/smtp-users.
type SMTPUsersClient struct {
	httpClient *http.Client
}

// NewSMTPUsersClient creates a new SMTP users client.
func NewSMTPUsersClient(httpClient *http.Client) *SMTPUsersClient {
	return &SMTPUsersClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.SMTPUsersClient.List.
func (c *SMTPUsersClient) List(ctx context.Context, req *mailersend.SMTPUserListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path+"/"+constants.PathSMTPUsers, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing SMTP users: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.SMTPUsersClient.Get.
func (c *SMTPUsersClient) Get(ctx context.Context, req *mailersend.SMTPUserRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := smtpUserPath(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SMTP user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Create implements mailersend.SMTPUsersClient.Create.
func (c *SMTPUsersClient) Create(ctx context.Context, req *mailersend.SMTPUserCreateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path+"/"+constants.PathSMTPUsers, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating SMTP user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.SMTPUsersClient.Update.
func (c *SMTPUsersClient) Update(ctx context.Context, req *mailersend.SMTPUserUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := smtpUserPath(&req.SMTPUserRequest)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating SMTP user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.SMTPUsersClient.Delete.
func (c *SMTPUsersClient) Delete(ctx context.Context, req *mailersend.SMTPUserRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := smtpUserPath(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting SMTP user: %w", err)
	}

	return toEnvelope(resp), nil
}

func smtpUserPath(req *mailersend.SMTPUserRequest) (string, error) {
	domainPath, err := resourcePath(constants.PathDomains, req.DomainID())
	if err != nil {
		return "", err
	}

	return resourcePath(domainPath+"/"+constants.PathSMTPUsers, req.SMTPUserID())
}
