package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// EmailsClient implements mailersend.EmailsClient.
type EmailsClient struct {
	httpClient *http.Client
}

// NewEmailsClient creates a new emails client.
func NewEmailsClient(httpClient *http.Client) *EmailsClient {
	return &EmailsClient{
		httpClient: httpClient,
	}
}

// Send implements mailersend.EmailsClient.Send. The API answers 202 with an
// empty body; the message id from the X-Message-Id header is exposed as the
// "id" field of the envelope.
func (c *EmailsClient) Send(ctx context.Context, req *mailersend.EmailRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathEmail, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("sending email: %w", err)
	}

	env := toEnvelope(resp)

	if data, ok := env.DataMap(); ok && len(data) == 0 && resp.StatusCode == nethttp.StatusAccepted {
		if messageID := resp.Header.Get(mailersend.HeaderMessageID); messageID != "" {
			env = mailersend.NewEnvelope(map[string]any{"id": messageID}, env.Headers(), resp.StatusCode)
		}
	}

	return env, nil
}

// SendBulk implements mailersend.EmailsClient.SendBulk.
func (c *EmailsClient) SendBulk(ctx context.Context, req *mailersend.BulkEmailRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathBulkEmail, req.Payload())
	if err != nil {
		return nil, fmt.Errorf("sending bulk email: %w", err)
	}

	return toEnvelope(resp), nil
}

// GetBulkStatus implements mailersend.EmailsClient.GetBulkStatus.
func (c *EmailsClient) GetBulkStatus(ctx context.Context, req *mailersend.BulkStatusRequest) (*mailersend.Envelope, error) {
	if err := required(req); err != nil {
		return nil, err
	}

	path, err := resourcePath(constants.PathBulkEmail, req.BulkEmailID())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting bulk email status: %w", err)
	}

	return toEnvelope(resp), nil
}
