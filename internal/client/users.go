package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// UsersClient implements mailersend.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new account users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements mailersend.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, req *mailersend.UserListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathUsers, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return toEnvelope(resp), nil
}

// Get implements mailersend.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, req *mailersend.UserRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathUsers, req.UserID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Invite implements mailersend.UsersClient.Invite.
func (c *UsersClient) Invite(ctx context.Context, req *mailersend.UserInviteRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathUsers, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("inviting user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Update implements mailersend.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, req *mailersend.UserUpdateRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathUsers, req.UserID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return toEnvelope(resp), nil
}

// Delete implements mailersend.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, req *mailersend.UserRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathUsers, req.UserID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	return toEnvelope(resp), nil
}

// ListInvites implements mailersend.UsersClient.ListInvites.
func (c *UsersClient) ListInvites(ctx context.Context, req *mailersend.InviteListRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.PathInvites, req.Query())
	if err != nil {
		return nil, fmt.Errorf("listing invites: %w", err)
	}

	return toEnvelope(resp), nil
}

// GetInvite implements mailersend.UsersClient.GetInvite.
func (c *UsersClient) GetInvite(ctx context.Context, req *mailersend.InviteRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInvites, req.InviteID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invite: %w", err)
	}

	return toEnvelope(resp), nil
}

// ResendInvite implements mailersend.UsersClient.ResendInvite.
func (c *UsersClient) ResendInvite(ctx context.Context, req *mailersend.InviteRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInvites, req.InviteID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path+"/resend", nil)
	if err != nil {
		return nil, fmt.Errorf("resending invite: %w", err)
	}

	return toEnvelope(resp), nil
}

// CancelInvite implements mailersend.UsersClient.CancelInvite.
func (c *UsersClient) CancelInvite(ctx context.Context, req *mailersend.InviteRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathInvites, req.InviteID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("cancelling invite: %w", err)
	}

	return toEnvelope(resp), nil
}
