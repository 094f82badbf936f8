package mailersend_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

func TestHeaders(t *testing.T) {
	t.Parallel()

	headers := mailersend.NewHeaders(http.Header{
		"X-Request-Id": {"req-1"},
		"Content-Type": {"application/json"},
		"Set-Cookie":   {"a=1", "b=2"},
	})

	tests := []struct {
		name     string
		lookup   string
		expected string
	}{
		{name: "canonical", lookup: "X-Request-Id", expected: "req-1"},
		{name: "lower case", lookup: "x-request-id", expected: "req-1"},
		{name: "attribute style", lookup: "x_request_id", expected: "req-1"},
		{name: "upper case", lookup: "CONTENT_TYPE", expected: "application/json"},
		{name: "repeated values joined", lookup: "set-cookie", expected: "a=1, b=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, ok := headers.Lookup(tt.lookup)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.expected, headers.Get(tt.lookup))
			assert.True(t, headers.Has(tt.lookup))
		})
	}

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, headers.Get("x-missing"))
		assert.False(t, headers.Has("x_missing"))

		_, err := headers.Attr("x_missing")
		require.ErrorIs(t, err, mailersend.ErrKeyNotPresent)
		assert.Equal(t, "header 'x_missing' not present in response", err.Error())
	})

	t.Run("export keeps original names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Content-Type", "Set-Cookie", "X-Request-Id"}, headers.Keys())
		assert.Equal(t, 3, headers.Len())

		exported := headers.ToMap()
		exported["X-Request-Id"] = "changed"
		assert.Equal(t, "req-1", headers.Get("X-Request-Id"))

		raw, err := headers.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"Content-Type":"application/json","Set-Cookie":"a=1, b=2","X-Request-Id":"req-1"}`, string(raw))
	})
}

func TestHeadersFromMap(t *testing.T) {
	t.Parallel()

	source := map[string]string{"x-apiquota-remaining": "10"}
	headers := mailersend.HeadersFromMap(source)
	source["x-apiquota-remaining"] = "0"

	value, err := headers.Attr("X_APIQUOTA_REMAINING")
	require.NoError(t, err)
	assert.Equal(t, "10", value)

	var empty mailersend.Headers

	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has("anything"))
}

func TestHeaders_CollidingNames(t *testing.T) {
	t.Parallel()

	raw := map[string]string{"X-Foo": "upper", "x_foo": "snake", "x-foo": "lower"}

	for range 20 {
		headers := mailersend.HeadersFromMap(raw)

		for _, name := range []string{"X-Foo", "x_foo", "X_FOO"} {
			value, ok := headers.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, "upper, lower, snake", value)
		}

		assert.Equal(t, 3, headers.Len())
		assert.Equal(t, raw, headers.ToMap())
	}
}
