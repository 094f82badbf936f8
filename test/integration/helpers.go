//go:build integration

// Package integration runs read-mostly checks against the live MailerSend
// API. Set MAILERSEND_API_KEY to enable it; MAILERSEND_TEST_DOMAIN_ID adds
// the domain-scoped checks.
package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/internal/logging"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
	"github.com/fivetwenty-io/mailersend-go/pkg/msclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey   string
	BaseURL  string
	DomainID string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:   os.Getenv(mailersend.APIKeyEnv),
		BaseURL:  os.Getenv("MAILERSEND_BASE_URL"),
		DomainID: os.Getenv("MAILERSEND_TEST_DOMAIN_ID"),
		Verbose:  os.Getenv("MAILERSEND_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no API key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skipf("%s not set, skipping integration test", mailersend.APIKeyEnv)
	}
}

// SkipIfNoDomain skips domain-scoped tests.
func (config *TestConfig) SkipIfNoDomain(t *testing.T) {
	t.Helper()

	if config.DomainID == "" {
		t.Skip("MAILERSEND_TEST_DOMAIN_ID not set, skipping domain test")
	}
}

// NewClient builds a client for the configured account. Throttled requests
// are retried so the suite tolerates low-tier rate limits.
func (config *TestConfig) NewClient(t *testing.T) mailersend.Client {
	t.Helper()

	clientConfig := &mailersend.Config{
		APIKey:       config.APIKey,
		BaseURL:      config.BaseURL,
		RetryMax:     2,
		RetryWaitMin: time.Second,
		RetryWaitMax: 10 * time.Second,
	}

	if config.Verbose {
		clientConfig.Debug = true
		clientConfig.Logger = logging.NewConsole(os.Stderr, "debug", false).WithComponent("integration")
	}

	client, err := msclient.New(context.Background(), clientConfig)
	require.NoError(t, err)

	return client
}

// RequireSuccess fails the test with the API error of a non-2xx envelope.
func RequireSuccess(t *testing.T) func(env *mailersend.Envelope, err error) *mailersend.Envelope {
	t.Helper()

	return func(env *mailersend.Envelope, err error) *mailersend.Envelope {
		t.Helper()

		require.NoError(t, err)
		require.NotNil(t, env)
		require.NoError(t, env.Err(), "request id: %s", env.GetOr(mailersend.KeyRequestID, ""))

		return env
	}
}

// testContext bounds each live call.
func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return ctx
}
