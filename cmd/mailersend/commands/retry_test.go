package commands

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

func throttled() *mailersend.Envelope {
	headers := mailersend.NewHeaders(http.Header{"Retry-After": {"0"}})

	return mailersend.NewEnvelope(map[string]any{"message": "Too Many Attempts."}, headers, http.StatusTooManyRequests)
}

func quotaOK() *mailersend.Envelope {
	return mailersend.NewEnvelope(map[string]any{"quota": 100}, mailersend.NewHeaders(nil), http.StatusOK)
}

// sequence replays envelopes and counts the attempts.
func sequence(envs ...*mailersend.Envelope) (func() (*mailersend.Envelope, error), *int) {
	calls := 0

	return func() (*mailersend.Envelope, error) {
		env := envs[min(calls, len(envs)-1)]
		calls++

		return env, nil
	}, &calls
}

func TestRetryThrottled(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after throttling", func(t *testing.T) {
		t.Parallel()

		attempt, calls := sequence(throttled(), throttled(), quotaOK())

		env, err := retryThrottled(context.Background(), 3, time.Millisecond, attempt)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, env.StatusCode())
		assert.Equal(t, 3, *calls)
	})

	t.Run("returns last envelope when retries run out", func(t *testing.T) {
		t.Parallel()

		attempt, calls := sequence(throttled())

		env, err := retryThrottled(context.Background(), 2, time.Millisecond, attempt)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, env.StatusCode())
		assert.Equal(t, 3, *calls)
	})

	t.Run("other statuses are not retried", func(t *testing.T) {
		t.Parallel()

		failed := mailersend.NewEnvelope(nil, mailersend.NewHeaders(nil), http.StatusInternalServerError)
		attempt, calls := sequence(failed)

		env, err := retryThrottled(context.Background(), 3, time.Millisecond, attempt)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, env.StatusCode())
		assert.Equal(t, 1, *calls)
	})

	t.Run("transport errors stop at once", func(t *testing.T) {
		t.Parallel()

		transportErr := &mailersend.TransportError{Method: http.MethodGet, URL: "http://example.invalid", Err: errors.New("refused")}
		calls := 0

		env, err := retryThrottled(context.Background(), 3, time.Millisecond, func() (*mailersend.Envelope, error) {
			calls++

			return nil, transportErr
		})
		require.ErrorIs(t, err, mailersend.ErrTransport)
		assert.Nil(t, env)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero retries makes one attempt", func(t *testing.T) {
		t.Parallel()

		attempt, calls := sequence(throttled(), quotaOK())

		env, err := retryThrottled(context.Background(), 0, time.Millisecond, attempt)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, env.StatusCode())
		assert.Equal(t, 1, *calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		attempt, _ := sequence(throttled())

		_, err := retryThrottled(ctx, 3, time.Hour, attempt)
		require.ErrorIs(t, err, context.Canceled)
	})
}
