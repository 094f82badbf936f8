package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/internal/auth"
	internalhttp "github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// TestAPIKey is the bearer token sent by clients created with NewTestClient.
const TestAPIKey = "mlsn.test-key"

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.NewStaticTokenManager(TestAPIKey))

	client := &Client{
		httpClient:   httpClient,
		tokenManager: auth.NewStaticTokenManager(TestAPIKey),
		baseURL:      httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client
}

// TestExchange describes one request a resource client is expected to make
// and the canned answer the server returns.
type TestExchange struct {
	Name          string
	Method        string
	ExpectedPath  string
	ExpectedQuery url.Values
	ExpectedBody  map[string]interface{}
	StatusCode    int
	Header        map[string]string
	Response      interface{}
	Call          func(context.Context, *Client) (*mailersend.Envelope, error)
	Check         func(*testing.T, *mailersend.Envelope)
}

// RunExchangeTests runs each exchange against its own httptest server.
func RunExchangeTests(t *testing.T, tests []TestExchange) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "Bearer "+TestAPIKey, request.Header.Get("Authorization"))

				if testCase.ExpectedQuery != nil {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.Query())
				}

				if testCase.ExpectedBody != nil {
					raw, err := io.ReadAll(request.Body)
					assert.NoError(t, err)

					var body map[string]interface{}

					assert.NoError(t, json.Unmarshal(raw, &body))
					assert.Equal(t, testCase.ExpectedBody, body)
				}

				for key, value := range testCase.Header {
					writer.Header().Set(key, value)
				}

				if testCase.Response != nil {
					writer.Header().Set("Content-Type", "application/json")
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				writer.WriteHeader(status)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			env, err := testCase.Call(context.Background(), NewTestClient(server.URL))
			require.NoError(t, err)
			require.NotNil(t, env)

			if testCase.StatusCode != 0 {
				assert.Equal(t, testCase.StatusCode, env.StatusCode())
			}

			if testCase.Check != nil {
				testCase.Check(t, env)
			}
		})
	}
}
