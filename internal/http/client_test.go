package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/internal/auth"
	mshttp "github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.logs))
	for i, entry := range l.logs {
		out[i], _ = entry["msg"].(string)
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/domains", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer mlsn.test", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Contains(t, request.Header.Get("User-Agent"), "mailersend-go/")
			assert.Empty(t, request.Header.Get("Content-Type"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "domain-id", "name": "example.com"})
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL+"/v1/", auth.NewStaticTokenManager("mlsn.test"))

		resp, err := client.Do(context.Background(), &mshttp.Request{Method: "GET", Path: "/domains"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var result map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "domain-id", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/recipients", request.URL.Path)
			assert.Equal(t, "limit=25&page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "recipients", url.Values{"page": {"2"}, "limit": {"25"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "<b>hi</b>", body["html"])

			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "email", map[string]string{"html": "<b>hi</b>"})
		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
		assert.Empty(t, resp.Body)
	})

	t.Run("error status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"message":"The given data was invalid."}`))
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "email", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.JSONEq(t, `{"message":"The given data was invalid."}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "sdk-test/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil, mshttp.WithUserAgent("sdk-test/1.0"))

		resp, err := client.Do(context.Background(), &mshttp.Request{
			Method:  "GET",
			Path:    "/templates",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("token manager failure", func(t *testing.T) {
		t.Parallel()

		client := mshttp.NewClient("http://127.0.0.1:1", auth.NewStaticTokenManager(""))

		_, err := client.Get(context.Background(), "domains", nil)
		require.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := mshttp.NewClient(serverURL, nil)

		resp, err := client.Get(context.Background(), "domains", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		require.ErrorIs(t, err, mailersend.ErrTransport)

		var transportErr *mailersend.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, "GET", transportErr.Method)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		_, err := mshttp.NewClient("http://localhost", nil).Do(context.Background(), nil)
		require.Error(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "req-1")
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := mshttp.NewClient(server.URL, nil, mshttp.WithLogger(logger), mshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "api-quota", nil)
		require.NoError(t, err)

		messages := logger.messages()
		require.GreaterOrEqual(t, len(messages), 2)
		assert.Equal(t, "HTTP Request", messages[0])
		assert.Equal(t, "HTTP Response", messages[len(messages)-1])

		last := logger.logs[len(logger.logs)-1]["fields"].(map[string]interface{})
		assert.Equal(t, 200, last["status"])
		assert.Equal(t, "req-1", last["request_id"])
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := mshttp.NewClient(server.URL, nil, mshttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "api-quota", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		withBody bool
		fn       func(*mshttp.Client, context.Context) (*mshttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *mshttp.Client, ctx context.Context) (*mshttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:     "POST",
			method:   "POST",
			withBody: true,
			fn: func(c *mshttp.Client, ctx context.Context) (*mshttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:     "PUT",
			method:   "PUT",
			withBody: true,
			fn: func(c *mshttp.Client, ctx context.Context) (*mshttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *mshttp.Client, ctx context.Context) (*mshttp.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
		{
			name:     "DELETE with body",
			method:   "DELETE",
			withBody: true,
			fn: func(c *mshttp.Client, ctx context.Context) (*mshttp.Response, error) {
				return c.Delete(ctx, "/test", map[string]bool{"all": true})
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				if testCase.withBody {
					assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := mshttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil, mshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("exhausted retries return the last response", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.Header().Set("Retry-After", "0")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil, mshttp.WithRetryConfig(2, time.Millisecond, 10*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 429, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := mshttp.NewClient(server.URL, nil, mshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
