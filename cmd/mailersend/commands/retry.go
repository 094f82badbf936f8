package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

var errThrottled = errors.New("throttled")

// retryAfterBackOff waits for the delay advertised by the last 429 response
// and falls back to exponential backoff when none was given.
type retryAfterBackOff struct {
	fallback backoff.BackOff
	next     *time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	if b.next != nil {
		delay := *b.next
		b.next = nil

		return delay
	}

	return b.fallback.NextBackOff()
}

func (b *retryAfterBackOff) Reset() {
	b.next = nil
	b.fallback.Reset()
}

// retryThrottled repeats attempt while it returns 429, at most retries
// extra times. Transport errors and other statuses end the loop at once.
// The last envelope is returned even when retries run out.
func retryThrottled(ctx context.Context, retries int, initial time.Duration, attempt func() (*mailersend.Envelope, error)) (*mailersend.Envelope, error) {
	fallback := backoff.NewExponentialBackOff()
	fallback.InitialInterval = initial
	fallback.MaxElapsedTime = 0

	policy := &retryAfterBackOff{fallback: fallback}

	var last *mailersend.Envelope

	operation := func() error {
		env, err := attempt()
		if err != nil {
			return backoff.Permanent(err)
		}

		last = env

		if env.StatusCode() != http.StatusTooManyRequests {
			return nil
		}

		if seconds, ok := env.RetryAfter(); ok && seconds >= 0 {
			delay := time.Duration(seconds) * time.Second
			policy.next = &delay
		}

		return errThrottled
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(max(retries, 0))), ctx))
	if err != nil && !errors.Is(err, errThrottled) {
		return nil, err
	}

	return last, nil
}
