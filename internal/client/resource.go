package client

import (
	"net/url"
	"strings"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/http"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// toEnvelope wraps a raw response. The status code is kept as is; callers
// decide what a 4xx or 5xx means.
func toEnvelope(resp *http.Response) *mailersend.Envelope {
	return mailersend.NewEnvelopeFromBody(resp.StatusCode, resp.Header, resp.Body)
}

// resourcePath joins base and the escaped ids. Every id must be non-empty.
func resourcePath(base string, ids ...string) (string, error) {
	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, base)

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return "", constants.ErrMissingID
		}

		parts = append(parts, url.PathEscape(id))
	}

	return strings.Join(parts, "/"), nil
}

// required rejects nil requests before they are dereferenced.
func required[T any](req *T) error {
	if req == nil {
		return constants.ErrNilRequest
	}

	return nil
}
