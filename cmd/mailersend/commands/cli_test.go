package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// apiRecorder is a fake MailerSend API that answers each request with the
// next scripted response.
type apiRecorder struct {
	mutex     sync.Mutex
	requests  []recordedRequest
	responses []scriptedResponse
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]any
}

type scriptedResponse struct {
	status  int
	headers map[string]string
	body    string
}

func (a *apiRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	req := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
	}

	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &req.Body)
	}

	a.requests = append(a.requests, req)

	resp := scriptedResponse{status: http.StatusOK, body: `{}`}
	if len(a.responses) > 0 {
		resp = a.responses[0]
		a.responses = a.responses[1:]
	}

	for name, value := range resp.headers {
		w.Header().Set(name, value)
	}

	if resp.body != "" {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (a *apiRecorder) recorded() []recordedRequest {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return append([]recordedRequest(nil), a.requests...)
}

func newAPI(t *testing.T, responses ...scriptedResponse) (*apiRecorder, string) {
	t.Helper()

	api := &apiRecorder{responses: responses}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	return api, server.URL + "/v1"
}

// runCLI executes the command tree with a fresh viper state and an isolated
// config file.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand("1.2.3", "abc123", "2024-03-01")

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), err
}

func isolatedConfig(t *testing.T) string {
	t.Helper()

	t.Setenv(mailersend.APIKeyEnv, "")
	t.Setenv("MAILERSEND_BASE_URL", "")

	return filepath.Join(t.TempDir(), "config.yml")
}

//nolint:paralleltest // viper and the environment are process-wide
func TestQuotaCommand(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{status: http.StatusOK, body: `{"quota":100,"remaining":42}`})

	out, err := runCLI(t, "quota", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL, "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"quota":100,"remaining":42}`, out)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/v1/api-quota", requests[0].Path)
	assert.Equal(t, "Bearer mlsn.key", requests[0].Auth)
}

//nolint:paralleltest // viper and the environment are process-wide
func TestDomainsListCommand(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{status: http.StatusOK, body: domainsBody})

	out, err := runCLI(t, "domains", "list", "--page", "2", "--limit", "25", "--verified",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "dom-2")
	assert.Contains(t, out, "Showing page 1 of 3")

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/domains", requests[0].Path)
	assert.Contains(t, requests[0].Query, "page=2")
	assert.Contains(t, requests[0].Query, "limit=25")
	assert.Contains(t, requests[0].Query, "verified=true")
}

//nolint:paralleltest // viper and the environment are process-wide
func TestEmailSendCommand(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{
		status:  http.StatusAccepted,
		headers: map[string]string{"X-Message-Id": "msg-1"},
	})

	out, err := runCLI(t, "email", "send",
		"--from", "Sender <sender@example.com>",
		"--to", "jane@example.com",
		"--to", "John <john@example.com>",
		"--subject", "Hello",
		"--text", "Hi there",
		"--tag", "welcome",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.NoError(t, err)
	assert.Contains(t, out, "msg-1")
	assert.NotContains(t, out, "OK (status")

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/v1/email", requests[0].Path)

	body := requests[0].Body
	assert.Equal(t, map[string]any{"email": "sender@example.com", "name": "Sender"}, body["from"])
	assert.Equal(t, []any{
		map[string]any{"email": "jane@example.com"},
		map[string]any{"email": "john@example.com", "name": "John"},
	}, body["to"])
	assert.Equal(t, "Hello", body["subject"])
	assert.Equal(t, "Hi there", body["text"])
	assert.Equal(t, []any{"welcome"}, body["tags"])
}

//nolint:paralleltest // viper and the environment are process-wide
func TestEmailSendCommand_ValidationFailsBeforeRequest(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t)

	_, err := runCLI(t, "email", "send", "--to", "not-an-address", "--subject", "Hi", "--text", "x",
		"--from", "sender@example.com", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, mailersend.ErrValidation)
	assert.Empty(t, api.recorded())
}

//nolint:paralleltest // viper and the environment are process-wide
func TestEmailSendCommand_APIError(t *testing.T) {
	config := isolatedConfig(t)
	_, baseURL := newAPI(t, scriptedResponse{
		status: http.StatusUnprocessableEntity,
		body:   `{"message":"The given data was invalid.","errors":{"from.email":["The from.email domain must be verified in your account to send emails. #MS42207"]}}`,
	})

	_, err := runCLI(t, "email", "send", "--to", "jane@example.com", "--subject", "Hi", "--text", "x",
		"--from", "sender@unverified.example", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, constants.ErrRequestFailed)
	assert.True(t, mailersend.IsUnprocessable(err))
	assert.Contains(t, err.Error(), "#MS42207")
}

//nolint:paralleltest // viper and the environment are process-wide
func TestSMSSendCommand(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{status: http.StatusAccepted})

	_, err := runCLI(t, "sms", "send", "--from", "+18332647501", "--to", "+16203221059", "--text", "Hello",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.NoError(t, err)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/sms", requests[0].Path)
	assert.Equal(t, "+18332647501", requests[0].Body["from"])
	assert.Equal(t, []any{"+16203221059"}, requests[0].Body["to"])
}

//nolint:paralleltest // viper and the environment are process-wide
func TestActivityListCommand(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{status: http.StatusOK, body: `{"data":[]}`})

	out, err := runCLI(t, "activity", "list", "dom-1",
		"--from", "2024-03-01", "--to", "2024-03-03", "--event", "delivered",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.NoError(t, err)
	assert.Equal(t, "No results found\n", out)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v1/activity/dom-1", requests[0].Path)
	assert.Contains(t, requests[0].Query, "date_from=1709251200")
	assert.Contains(t, requests[0].Query, "date_to=1709424000")

	_, err = runCLI(t, "activity", "list", "dom-1", "--from", "2024-03-01", "--to", "2024-03-20",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, mailersend.ErrValidation)
	assert.Len(t, api.recorded(), 1)
}

//nolint:paralleltest // viper and the environment are process-wide
func TestRetryThrottledFlag(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t,
		scriptedResponse{status: http.StatusTooManyRequests, headers: map[string]string{"Retry-After": "0"}, body: `{"message":"Too Many Attempts."}`},
		scriptedResponse{status: http.StatusOK, body: `{"quota":100,"remaining":41}`},
	)

	out, err := runCLI(t, "quota", "--retry-throttled", "-o", "json",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quota":100,"remaining":41}`, out)
	assert.Len(t, api.recorded(), 2)
}

//nolint:paralleltest // viper and the environment are process-wide
func TestThrottledWithoutRetry(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t,
		scriptedResponse{status: http.StatusTooManyRequests, headers: map[string]string{"Retry-After": "30"}, body: `{"message":"Too Many Attempts."}`},
	)

	_, err := runCLI(t, "quota", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.Error(t, err)
	assert.True(t, mailersend.IsRateLimited(err))
	assert.Len(t, api.recorded(), 1)
}

//nolint:paralleltest // viper and the environment are process-wide
func TestCommandErrorsBeforeRequest(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t)

	_, err := runCLI(t, "quota", "--config", config, "--base-url", baseURL)
	require.ErrorIs(t, err, constants.ErrNoAPIKeyConfigured)

	_, err = runCLI(t, "quota", "-o", "xml", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)

	_, err = runCLI(t, "analytics", "opens", "--by", "planet", "--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, constants.ErrInvalidBreakdown)

	_, err = runCLI(t, "suppressions", "add", "on-hold-list", "--domain-id", "dom-1", "--recipient", "a@example.com",
		"--config", config, "--api-key", "mlsn.key", "--base-url", baseURL)
	require.ErrorIs(t, err, mailersend.ErrValidation)

	assert.Empty(t, api.recorded())
}

//nolint:paralleltest // viper and the environment are process-wide
func TestAPIKeyFromEnvironment(t *testing.T) {
	config := isolatedConfig(t)
	api, baseURL := newAPI(t, scriptedResponse{status: http.StatusOK, body: `{"quota":1}`})

	t.Setenv(mailersend.APIKeyEnv, "mlsn.from-env")

	_, err := runCLI(t, "quota", "--config", config, "--base-url", baseURL)
	require.NoError(t, err)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "Bearer mlsn.from-env", requests[0].Auth)
}

//nolint:paralleltest // viper and the environment are process-wide
func TestConfigCommands(t *testing.T) {
	config := isolatedConfig(t)

	_, err := runCLI(t, "config", "set-token", "mlsn.abcdef1234", "--config", config)
	require.NoError(t, err)

	_, err = runCLI(t, "config", "set", "base_url", "https://example.test/v1", "--config", config)
	require.NoError(t, err)

	_, err = runCLI(t, "config", "set", "timeout", "45s", "--config", config)
	require.NoError(t, err)

	info, err := os.Stat(config)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	raw, err := os.ReadFile(config)
	require.NoError(t, err)

	var stored Config
	require.NoError(t, yaml.Unmarshal(raw, &stored))
	assert.Equal(t, "mlsn.abcdef1234", stored.APIKey)
	assert.Equal(t, "https://example.test/v1", stored.BaseURL)
	assert.Equal(t, "45s", stored.Timeout)

	out, err := runCLI(t, "config", "show", "-o", "json", "--config", config)
	require.NoError(t, err)

	var shown Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, strings.Repeat("*", 11)+"1234", shown.APIKey)
	assert.Equal(t, "https://example.test/v1", shown.BaseURL)
	assert.Equal(t, "45s", shown.Timeout)

	_, err = runCLI(t, "config", "unset", "timeout", "--config", config)
	require.NoError(t, err)

	raw, err = os.ReadFile(config)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "timeout")

	_, err = runCLI(t, "config", "set", "colour", "red", "--config", config)
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = runCLI(t, "config", "set", "output", "xml", "--config", config)
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)

	_, err = runCLI(t, "config", "set", "timeout", "soon", "--config", config)
	require.Error(t, err)

	_, err = runCLI(t, "config", "set-token", "   ", "--config", config)
	require.ErrorIs(t, err, constants.ErrEmptyToken)
}

//nolint:paralleltest // replaces the terminal hooks
func TestConfigSetToken_Prompt(t *testing.T) {
	config := isolatedConfig(t)

	originalTerminal, originalReader := isTerminal, passwordReader
	t.Cleanup(func() { isTerminal, passwordReader = originalTerminal, originalReader })

	isTerminal = func(int) bool { return false }

	_, err := runCLI(t, "config", "set-token", "--config", config)
	require.ErrorIs(t, err, constants.ErrNotATerminal)

	isTerminal = func(int) bool { return true }
	passwordReader = func(int) ([]byte, error) { return []byte("  mlsn.prompted  "), nil }

	_, err = runCLI(t, "config", "set-token", "--config", config)
	require.NoError(t, err)

	raw, err := os.ReadFile(config)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "api_key: mlsn.prompted")
}

//nolint:paralleltest // viper is process-wide
func TestVersionCommand(t *testing.T) {
	config := isolatedConfig(t)

	out, err := runCLI(t, "version", "-o", "json", "--config", config)
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, VersionInfo{Version: "1.2.3", SDKVersion: constants.Version, Commit: "abc123", Built: "2024-03-01"}, info)

	out, err = runCLI(t, "version", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "abc123")
}
