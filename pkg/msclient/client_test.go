package msclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
	"github.com/fivetwenty-io/mailersend-go/pkg/msclient"
)

func quotaServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/v1/api-quota" || request.Header.Get("Authorization") != "Bearer mlsn.key" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"quota":100,"remaining":42}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := msclient.New(context.Background(), nil)
		require.ErrorIs(t, err, mailersend.ErrConfigRequired)
	})

	t.Run("uses base URL with trailing slash", func(t *testing.T) {
		t.Parallel()

		server := quotaServer(t)
		config := &mailersend.Config{APIKey: "mlsn.key", BaseURL: server.URL + "/v1/"}

		client, err := msclient.New(context.Background(), config)
		require.NoError(t, err)

		env, err := client.Quota().Get(context.Background())
		require.NoError(t, err)
		assert.True(t, env.Success())

		remaining, err := env.GetInt("remaining")
		require.NoError(t, err)
		assert.Equal(t, 42, remaining)

		assert.Equal(t, server.URL+"/v1/", config.BaseURL)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := msclient.New(context.Background(), &mailersend.Config{APIKey: "mlsn.key", BaseURL: "http://[::1"})
		require.ErrorIs(t, err, mailersend.ErrInvalidBaseURL)
	})

	t.Run("adds scheme", func(t *testing.T) {
		t.Parallel()

		client, err := msclient.New(context.Background(), &mailersend.Config{APIKey: "mlsn.key", BaseURL: "api.example.com/v1"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := msclient.NewWithAPIKey(context.Background(), "mlsn.key")
	require.NoError(t, err)
	assert.NotNil(t, client.Emails())
	assert.NotNil(t, client.SMSInbounds())
}

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestNewFromEnv(t *testing.T) {
	t.Setenv(mailersend.APIKeyEnv, "")

	_, err := msclient.NewFromEnv(context.Background(), "")
	require.ErrorIs(t, err, mailersend.ErrMissingAPIKey)

	t.Setenv(mailersend.APIKeyEnv, "mlsn.key")

	client, err := msclient.NewFromEnv(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
