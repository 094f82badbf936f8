package mailersend

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

// Headers is a read-only view of the response headers.
//
// Lookups ignore case and treat '-' and '_' as the same character, so
// "X-Request-Id", "x-request-id" and "x_request_id" resolve to the same
// entry. The names received on the wire are kept for export. When several
// wire names normalize to the same key, a lookup returns their values joined
// with ", " in sorted name order.
type Headers struct {
	values map[string]string
	lookup map[string]string
}

// NewHeaders builds Headers from an http.Header. Repeated headers are joined
// with ", ".
func NewHeaders(header http.Header) Headers {
	values := make(map[string]string, len(header))
	for name, vals := range header {
		values[name] = strings.Join(vals, ", ")
	}

	return newHeaders(values)
}

// HeadersFromMap builds Headers from a name/value mapping.
func HeadersFromMap(m map[string]string) Headers {
	values := make(map[string]string, len(m))
	for name, value := range m {
		values[name] = value
	}

	return newHeaders(values)
}

func newHeaders(values map[string]string) Headers {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	lookup := make(map[string]string, len(values))
	for _, name := range names {
		key := normalizeHeaderName(name)
		if prev, ok := lookup[key]; ok {
			lookup[key] = prev + ", " + values[name]

			continue
		}

		lookup[key] = values[name]
	}

	return Headers{values: values, lookup: lookup}
}

func normalizeHeaderName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// Lookup returns the value of the named header and whether it was present.
func (h Headers) Lookup(name string) (string, bool) {
	value, ok := h.lookup[normalizeHeaderName(name)]

	return value, ok
}

// Get returns the value of the named header, or "" when absent.
func (h Headers) Get(name string) string {
	value, _ := h.Lookup(name)

	return value
}

// Attr resolves an attribute-style name such as "x_request_id" or
// "content_type".
func (h Headers) Attr(name string) (string, error) {
	value, ok := h.Lookup(name)
	if !ok {
		return "", &KeyError{Key: name, Detail: "header '" + name + "' not present in response"}
	}

	return value, nil
}

// Has reports whether the named header is present.
func (h Headers) Has(name string) bool {
	_, ok := h.Lookup(name)

	return ok
}

// Keys returns the original header names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h.values))
	for name := range h.values {
		keys = append(keys, name)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of headers.
func (h Headers) Len() int {
	return len(h.values)
}

// ToMap returns a copy of the headers keyed by their original names.
func (h Headers) ToMap() map[string]string {
	out := make(map[string]string, len(h.values))
	for name, value := range h.values {
		out[name] = value
	}

	return out
}

// MarshalJSON encodes the headers as an object of original names.
func (h Headers) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.ToMap())
}
