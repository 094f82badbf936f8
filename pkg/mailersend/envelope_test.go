package mailersend_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

const listBody = `{
	"id": "abc",
	"status_code": "from-body",
	"data": {"nested": true},
	"items": [{"n": 1}, {"n": 2}],
	"meta": {"current_page": 2, "per_page": 25, "total": 60, "last_page": 3}
}`

func listEnvelope(t *testing.T) *mailersend.Envelope {
	t.Helper()

	header := http.Header{}
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("X-Request-Id", "req-1")
	header.Set("X-Apiquota-Remaining", "99")

	return mailersend.NewEnvelopeFromBody(http.StatusOK, header, []byte(listBody))
}

func TestEnvelope_SuccessBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		success bool
	}{
		{status: 199, success: false},
		{status: http.StatusOK, success: true},
		{status: http.StatusAccepted, success: true},
		{status: 299, success: true},
		{status: 300, success: false},
		{status: http.StatusUnprocessableEntity, success: false},
		{status: http.StatusTooManyRequests, success: false},
		{status: http.StatusInternalServerError, success: false},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			t.Parallel()

			env := mailersend.NewEnvelope(nil, mailersend.HeadersFromMap(nil), tt.status)
			assert.Equal(t, tt.success, env.Success())

			success, err := env.Get(mailersend.KeySuccess)
			require.NoError(t, err)
			assert.Equal(t, tt.success, success)

			if tt.success {
				assert.NoError(t, env.Err())
			} else {
				assert.Error(t, env.Err())
			}
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEnvelope_KeyAccess(t *testing.T) {
	t.Parallel()

	env := listEnvelope(t)

	t.Run("body field", func(t *testing.T) {
		t.Parallel()

		id, err := env.Get("id")
		require.NoError(t, err)
		assert.Equal(t, "abc", id)

		field, err := env.Field("id")
		require.NoError(t, err)
		assert.Equal(t, id, field)
	})

	t.Run("reserved key wins over body", func(t *testing.T) {
		t.Parallel()

		code, err := env.Get(mailersend.KeyStatusCode)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)

		shadowed, err := env.Get("data_status_code")
		require.NoError(t, err)
		assert.Equal(t, "from-body", shadowed)
	})

	t.Run("data key returns whole body", func(t *testing.T) {
		t.Parallel()

		data, err := env.Get(mailersend.KeyData)
		require.NoError(t, err)
		assert.Equal(t, env.Data(), data)

		nested, err := env.Get("data_data")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"nested": true}, nested)
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()

		requestID, ok := env.RequestID()
		assert.True(t, ok)
		assert.Equal(t, "req-1", requestID)

		remaining, err := env.GetInt(mailersend.KeyRateLimitRemaining)
		require.NoError(t, err)
		assert.Equal(t, 99, remaining)

		_, ok = env.RetryAfter()
		assert.False(t, ok)

		retryAfter, err := env.Get(mailersend.KeyRetryAfter)
		require.NoError(t, err)
		assert.Nil(t, retryAfter)

		success, err := env.GetBool(mailersend.KeySuccess)
		require.NoError(t, err)
		assert.True(t, success)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, err := env.Get("missing")
		require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)
		assert.Contains(t, err.Error(), "missing")

		_, err = env.Get("data_missing")
		require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)
		assert.Equal(t, "data field 'missing' not found", err.Error())

		assert.Equal(t, "fallback", env.GetOr("missing", "fallback"))
		assert.False(t, env.Has("missing"))
		assert.True(t, env.Has("id"))
		assert.True(t, env.Has(mailersend.KeyRequestID))
	})

	t.Run("typed access mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := env.GetString(mailersend.KeyStatusCode)
		require.ErrorIs(t, err, mailersend.ErrFieldType)

		_, err = env.GetInt("id")
		require.ErrorIs(t, err, mailersend.ErrFieldType)

		_, err = env.GetBool("id")
		require.ErrorIs(t, err, mailersend.ErrFieldType)
	})
}

func TestEnvelope_PathAndPage(t *testing.T) {
	t.Parallel()

	env := listEnvelope(t)

	n, err := env.Path("items", 1, "n")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, n, 0)

	_, err = env.Path("items", 5)
	require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)

	_, err = env.Path("id", "deeper")
	require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)

	_, err = env.Path(1.5)
	require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)

	page, ok := env.Page()
	require.True(t, ok)
	assert.Equal(t, mailersend.PageInfo{CurrentPage: 2, PerPage: 25, Total: 60, LastPage: 3}, page)

	_, ok = mailersend.NewEnvelope(nil, mailersend.Headers{}, http.StatusOK).Page()
	assert.False(t, ok)
}

func TestEnvelope_IsImmutable(t *testing.T) {
	t.Parallel()

	env := listEnvelope(t)

	data, ok := env.DataMap()
	require.True(t, ok)

	data["id"] = "changed"
	data["meta"].(map[string]any)["total"] = 0

	items, err := env.Get("items")
	require.NoError(t, err)

	items.([]any)[0] = "changed"

	id, err := env.GetString("id")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	page, _ := env.Page()
	assert.Equal(t, 60, page.Total)

	first, err := env.Path("items", 0, "n")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, first, 0)
}

func TestNewEnvelopeFromBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		expected    any
	}{
		{name: "empty body", contentType: "application/json", body: "", expected: map[string]any{}},
		{name: "whitespace body", contentType: "", body: "  \n", expected: map[string]any{}},
		{name: "html body", contentType: "text/html", body: "<html></html>", expected: map[string]any{}},
		{name: "invalid json", contentType: "application/json", body: "{", expected: map[string]any{}},
		{name: "no content type", contentType: "", body: `{"a":1}`, expected: map[string]any{"a": 1.0}},
		{name: "array body", contentType: "application/json", body: `["x","y"]`, expected: []any{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			if tt.contentType != "" {
				header.Set("Content-Type", tt.contentType)
			}

			env := mailersend.NewEnvelopeFromBody(http.StatusOK, header, []byte(tt.body))
			assert.Equal(t, tt.expected, env.Data())
		})
	}
}

func TestEnvelope_ArrayBody(t *testing.T) {
	t.Parallel()

	env := mailersend.NewEnvelope([]any{"x", "y"}, mailersend.Headers{}, http.StatusOK)

	_, ok := env.DataMap()
	assert.False(t, ok)

	_, err := env.Get("x")
	require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)

	second, err := env.Path(1)
	require.NoError(t, err)
	assert.Equal(t, "y", second)
	assert.JSONEq(t, `["x","y"]`, env.String())
}

func TestEnvelope_Export(t *testing.T) {
	t.Parallel()

	env := listEnvelope(t)

	assert.Equal(t, []string{
		mailersend.KeyData,
		mailersend.KeyHeaders,
		mailersend.KeyStatusCode,
		mailersend.KeyRequestID,
		mailersend.KeyRateLimitRemaining,
		mailersend.KeyRetryAfter,
		mailersend.KeySuccess,
	}, env.Keys())
	assert.Len(t, env.Values(), len(env.Keys()))

	items := env.Items()
	require.Len(t, items, 7)
	assert.Equal(t, mailersend.KeyStatusCode, items[2].Key)
	assert.Equal(t, http.StatusOK, items[2].Value)

	exported := env.ToMap()
	assert.Equal(t, "req-1", exported[mailersend.KeyRequestID])
	assert.Equal(t, "99", exported[mailersend.KeyHeaders].(map[string]string)["X-Apiquota-Remaining"])

	compact, err := env.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, compact, "\n")

	marshalled, err := env.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, compact, string(marshalled))

	indented, err := env.ToJSON(mailersend.WithIndent(2))
	require.NoError(t, err)
	assert.Contains(t, indented, "\n  \"data\": {")
}

func TestEnvelope_ToJSONASCII(t *testing.T) {
	t.Parallel()

	env := mailersend.NewEnvelope(map[string]any{"name": "Zoë 😀"}, mailersend.Headers{}, http.StatusOK)

	plain, err := env.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, plain, "Zoë 😀")

	ascii, err := env.ToJSON(mailersend.WithASCII(true))
	require.NoError(t, err)
	assert.Contains(t, ascii, `Zo\u00eb \ud83d\ude00`)
	assert.JSONEq(t, plain, ascii)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Retry-After", "30")

	env := mailersend.NewEnvelopeFromBody(http.StatusTooManyRequests, header, []byte(`{"message":"Too Many Attempts."}`))

	raw, err := env.ToJSON()
	require.NoError(t, err)

	restored, err := mailersend.FromJSON([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, env.ToMap(), restored.ToMap())
	assert.Equal(t, "30", restored.Headers().Get("retry_after"))

	retryAfter, ok := restored.RetryAfter()
	assert.True(t, ok)
	assert.Equal(t, 30, retryAfter)

	fromMap, err := mailersend.FromMap(env.ToMap())
	require.NoError(t, err)
	assert.Equal(t, env.ToMap(), fromMap.ToMap())
}

func TestFromMap_Invalid(t *testing.T) {
	t.Parallel()

	_, err := mailersend.FromMap(nil)
	require.ErrorIs(t, err, mailersend.ErrInvalidEnvelope)

	_, err = mailersend.FromMap(map[string]any{"data": map[string]any{}})
	require.ErrorIs(t, err, mailersend.ErrInvalidEnvelope)

	_, err = mailersend.FromMap(map[string]any{"status_code": 200, "headers": "not-a-map"})
	require.ErrorIs(t, err, mailersend.ErrInvalidEnvelope)

	_, err = mailersend.FromJSON([]byte("not json"))
	require.ErrorIs(t, err, mailersend.ErrInvalidEnvelope)
}

func TestEnvelope_Err(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("X-Request-Id", "req-9")

	env := mailersend.NewEnvelopeFromBody(http.StatusUnprocessableEntity, header, []byte(`{
		"message": "The given data was invalid.",
		"errors": {"from.email": ["The from.email must be verified."], "subject": "is required"}
	}`))

	err := env.Err()
	require.ErrorIs(t, err, mailersend.ErrAPIResponse)
	assert.True(t, mailersend.IsUnprocessable(err))

	var apiErr *mailersend.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "req-9", apiErr.RequestID)
	assert.Equal(t, []string{"The from.email must be verified."}, apiErr.FieldErrors("from.email"))
	assert.Equal(t, []string{"is required"}, apiErr.FieldErrors("subject"))
	assert.Equal(t,
		"The given data was invalid.: from.email: The from.email must be verified.; subject: is required (status: 422)",
		apiErr.Error())

	require.NoError(t, listEnvelope(t).Err())
}
