package commands

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

func envelopeOf(t *testing.T, status int, body string) *mailersend.Envelope {
	t.Helper()

	return mailersend.NewEnvelopeFromBody(status, http.Header{"Content-Type": {"application/json"}}, []byte(body))
}

const domainsBody = `{
	"data": [
		{"id": "dom-1", "name": "example.com", "is_verified": true, "domain_settings": {"send_paused": false}},
		{"id": "dom-2", "name": "example.org", "is_verified": false}
	],
	"meta": {"current_page": 1, "per_page": 2, "total": 5, "last_page": 3}
}`

//nolint:funlen
func TestRenderEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("list as table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, domainsBody)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatTable, []string{"id", "name", "domain_settings.send_paused", "created_at"}))

		out := buf.String()
		assert.Contains(t, out, "dom-1")
		assert.Contains(t, out, "example.org")
		assert.Contains(t, out, "false")
		assert.Contains(t, out, constants.NotAvailable)
		assert.Contains(t, out, "Showing page 1 of 3 (5 total)")
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, `{"data": [], "meta": {"current_page": 1, "last_page": 1}}`)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatTable, nil))
		assert.Equal(t, "No results found\n", buf.String())
	})

	t.Run("object as properties", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, `{"quota": 100, "remaining": 42, "reset": "2024-03-02T00:00:00Z"}`)
		require.NoError(t, renderEnvelope(&buf, env, "", nil))

		out := buf.String()
		assert.Contains(t, out, "Remaining")
		assert.Contains(t, out, "42")
		assert.Contains(t, out, "2024-03-02T00:00:00Z")
	})

	t.Run("single resource under data", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, `{"data": {"id": "dom-1", "name": "example.com"}}`)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatTable, nil))
		assert.Contains(t, buf.String(), "example.com")
		assert.Contains(t, buf.String(), "Name")
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := mailersend.NewEnvelopeFromBody(http.StatusAccepted, http.Header{}, nil)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatTable, nil))
		assert.Equal(t, "OK (status 202)\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, domainsBody)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatJSON, nil))
		assert.JSONEq(t, domainsBody, buf.String())
		assert.True(t, strings.HasPrefix(buf.String(), "{\n  \""))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusOK, `{"quota": 100, "tags": ["a", "b"]}`)
		require.NoError(t, renderEnvelope(&buf, env, constants.FormatYAML, nil))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 100, decoded["quota"])
		assert.Equal(t, []any{"a", "b"}, decoded["tags"])
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		env := envelopeOf(t, http.StatusUnprocessableEntity,
			`{"message": "The given data was invalid.", "errors": {"from.email": ["The from.email must be verified."]}}`)

		err := renderEnvelope(&buf, env, constants.FormatJSON, nil)
		require.ErrorIs(t, err, constants.ErrRequestFailed)

		var apiErr *mailersend.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, buf.String(), "The from.email must be verified.")
	})

	t.Run("api error as table prints nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := renderEnvelope(&buf, envelopeOf(t, http.StatusNotFound, `{"message": "Not found"}`), constants.FormatTable, nil)
		require.Error(t, err)
		assert.True(t, mailersend.IsNotFound(err))
		assert.Empty(t, buf.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		err := renderEnvelope(&bytes.Buffer{}, envelopeOf(t, http.StatusOK, `{}`), "xml", nil)
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})
}

func TestInferColumns(t *testing.T) {
	t.Parallel()

	rows := []any{
		map[string]any{"name": "a", "id": "1", "nested": map[string]any{}, "list": []any{}, "created_at": "x"},
	}

	assert.Equal(t, []string{"id", "created_at", "name"}, inferColumns(rows))
}

func TestCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, cell(nil))
	assert.Equal(t, "42", cell(float64(42)))
	assert.Equal(t, "1.5", cell(1.5))
	assert.Equal(t, "true", cell(true))
	assert.Equal(t, `["a","b"]`, cell([]any{"a", "b"}))

	long := cell(strings.Repeat("x", 100))
	assert.Len(t, long, constants.DescriptionDisplayLength)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestHeaderTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Is Verified", headerTitle("is_verified"))
	assert.Equal(t, "Email Recipient Email", headerTitle("email.recipient.email"))
}

func TestLookupPath(t *testing.T) {
	t.Parallel()

	item := map[string]any{"email": map[string]any{"recipient": map[string]any{"email": "a@example.com"}}}

	assert.Equal(t, "a@example.com", lookupPath(item, "email.recipient.email"))
	assert.Nil(t, lookupPath(item, "email.subject"))
	assert.Nil(t, lookupPath(item, "email.recipient.email.domain"))
	assert.Nil(t, lookupPath(nil, "id"))
}

