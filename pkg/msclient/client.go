package msclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/mailersend-go/internal/client"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// New creates a MailerSend API client. The caller's config is not modified.
func New(ctx context.Context, config *mailersend.Config) (mailersend.Client, error) {
	if config == nil {
		return nil, mailersend.ErrConfigRequired
	}

	normalized := *config

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	normalized.BaseURL = baseURL

	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the default API root.
func NewWithAPIKey(ctx context.Context, apiKey string) (mailersend.Client, error) {
	return New(ctx, &mailersend.Config{
		APIKey: apiKey,
	})
}

// NewFromEnv creates a client whose key comes from MAILERSEND_API_KEY, read
// from the environment or from envFile.
func NewFromEnv(ctx context.Context, envFile string) (mailersend.Client, error) {
	return New(ctx, &mailersend.Config{
		EnvFile: envFile,
	})
}

func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if baseURL == "" {
		return mailersend.DefaultBaseURL, nil
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", mailersend.ErrInvalidBaseURL, raw, err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w %q: missing host", mailersend.ErrInvalidBaseURL, raw)
	}

	return baseURL, nil
}
