package mailersend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
)

// Response headers that feed the envelope metadata.
const (
	HeaderRequestID      = "X-Request-Id"
	HeaderQuotaRemaining = "X-Apiquota-Remaining"
	HeaderRetryAfter     = "Retry-After"
	HeaderMessageID      = "X-Message-Id"
	HeaderSendPaused     = "X-Send-Paused"
)

// Reserved top-level keys of an Envelope. Every other key is looked up in
// the decoded body.
const (
	KeyData               = "data"
	KeyHeaders            = "headers"
	KeyStatusCode         = "status_code"
	KeyRequestID          = "request_id"
	KeyRateLimitRemaining = "rate_limit_remaining"
	KeyRetryAfter         = "retry_after"
	KeySuccess            = "success"
)

// DataPrefix selects a body field whose name is a reserved key, for example
// "data_status_code" reads data["status_code"]. The prefix always refers to
// the body, so a body field literally named "data_x" is "data_data_x".
const DataPrefix = "data_"

var reservedKeys = []string{
	KeyData,
	KeyHeaders,
	KeyStatusCode,
	KeyRequestID,
	KeyRateLimitRemaining,
	KeyRetryAfter,
	KeySuccess,
}

// Envelope is the immutable result of one HTTP exchange: the decoded body,
// the response headers and metadata derived from them.
//
// The same state can be read three ways: by key (Get, GetOr, Has), by
// attribute (the typed accessors and Field) and by export (ToMap, ToJSON).
// Keys that are not reserved resolve against the body when it is a JSON
// object, so env.Get("id") and env.Path("id") agree.
type Envelope struct {
	data               any
	headers            Headers
	statusCode         int
	requestID          *string
	rateLimitRemaining *int
	retryAfter         *int
}

// Item is one key/value pair of the top-level mapping.
type Item struct {
	Key   string
	Value any
}

// PageInfo summarizes the "meta" object of a paginated list body.
type PageInfo struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
}

// NewEnvelope wraps a decoded body. Metadata is derived from the headers.
// A nil body becomes an empty object.
func NewEnvelope(data any, headers Headers, statusCode int) *Envelope {
	env := &Envelope{
		data:       normalizeData(data),
		headers:    headers,
		statusCode: statusCode,
	}

	if value, ok := headers.Lookup(HeaderRequestID); ok {
		env.requestID = &value
	}

	env.rateLimitRemaining = parseIntHeader(headers, HeaderQuotaRemaining)
	env.retryAfter = parseIntHeader(headers, HeaderRetryAfter)

	return env
}

// NewEnvelopeFromBody decodes body as JSON when the content type says so and
// the body is not empty. Anything else yields an empty object.
func NewEnvelopeFromBody(statusCode int, header http.Header, body []byte) *Envelope {
	var data any

	contentType := strings.ToLower(header.Get("Content-Type"))
	if len(bytes.TrimSpace(body)) > 0 && (contentType == "" || strings.Contains(contentType, "json")) {
		if err := json.Unmarshal(body, &data); err != nil {
			data = nil
		}
	}

	return NewEnvelope(data, NewHeaders(header), statusCode)
}

func normalizeData(data any) any {
	if data == nil {
		return map[string]any{}
	}

	return data
}

func parseIntHeader(headers Headers, name string) *int {
	raw, ok := headers.Lookup(name)
	if !ok {
		return nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	return &value
}

// Data returns a copy of the decoded body: a map, a slice or a scalar.
func (e *Envelope) Data() any {
	return cloneValue(e.data)
}

// DataMap returns a copy of the body when it is a JSON object.
func (e *Envelope) DataMap() (map[string]any, bool) {
	m, ok := e.data.(map[string]any)
	if !ok {
		return nil, false
	}

	return cloneMap(m), true
}

// Headers returns the response headers.
func (e *Envelope) Headers() Headers {
	return e.headers
}

// StatusCode returns the HTTP status code.
func (e *Envelope) StatusCode() int {
	return e.statusCode
}

// Success reports whether the status code is in [200, 300).
func (e *Envelope) Success() bool {
	return e.statusCode >= http.StatusOK && e.statusCode < http.StatusMultipleChoices
}

// RequestID returns the X-Request-Id header value.
func (e *Envelope) RequestID() (string, bool) {
	if e.requestID == nil {
		return "", false
	}

	return *e.requestID, true
}

// RateLimitRemaining returns the remaining daily quota advertised by the API.
func (e *Envelope) RateLimitRemaining() (int, bool) {
	if e.rateLimitRemaining == nil {
		return 0, false
	}

	return *e.rateLimitRemaining, true
}

// RetryAfter returns the delay in seconds advertised by a Retry-After header.
// It is only set when the header was present and numeric.
func (e *Envelope) RetryAfter() (int, bool) {
	if e.retryAfter == nil {
		return 0, false
	}

	return *e.retryAfter, true
}

// Get resolves key against the top-level mapping, then against the body.
func (e *Envelope) Get(key string) (any, error) {
	return e.resolve(key)
}

// GetOr is Get without the error: def is returned for absent keys.
func (e *Envelope) GetOr(key string, def any) any {
	value, err := e.resolve(key)
	if err != nil {
		return def
	}

	return value
}

// Has reports whether Get would succeed for key.
func (e *Envelope) Has(key string) bool {
	_, err := e.resolve(key)

	return err == nil
}

// Field is the attribute-style read of a body field, e.g. Field("id").
// Reserved names return the envelope field; use DataPrefix to reach a body
// field shadowed by one.
func (e *Envelope) Field(name string) (any, error) {
	return e.resolve(name)
}

// GetString returns a string field.
func (e *Envelope) GetString(name string) (string, error) {
	value, err := e.resolve(name)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is %T, not a string: %w", name, value, ErrFieldType)
	}

	return s, nil
}

// GetInt returns a numeric field as an int.
func (e *Envelope) GetInt(name string) (int, error) {
	value, err := e.resolve(name)
	if err != nil {
		return 0, err
	}

	n, ok := toInt(value)
	if !ok {
		return 0, fmt.Errorf("field %q is %T, not a number: %w", name, value, ErrFieldType)
	}

	return n, nil
}

// GetBool returns a boolean field.
func (e *Envelope) GetBool(name string) (bool, error) {
	value, err := e.resolve(name)
	if err != nil {
		return false, err
	}

	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("field %q is %T, not a bool: %w", name, value, ErrFieldType)
	}

	return b, nil
}

func (e *Envelope) resolve(key string) (any, error) {
	if value, ok := e.topLevel(key); ok {
		return value, nil
	}

	body, isObject := e.data.(map[string]any)

	if strings.HasPrefix(key, DataPrefix) {
		field := strings.TrimPrefix(key, DataPrefix)
		if isObject {
			if value, ok := body[field]; ok {
				return cloneValue(value), nil
			}
		}

		return nil, &KeyError{Key: key, Detail: fmt.Sprintf("data field '%s' not found", field)}
	}

	if isObject {
		if value, ok := body[key]; ok {
			return cloneValue(value), nil
		}
	}

	return nil, &KeyError{Key: key}
}

func (e *Envelope) topLevel(key string) (any, bool) {
	switch key {
	case KeyData:
		return cloneValue(e.data), true
	case KeyHeaders:
		return e.headers, true
	case KeyStatusCode:
		return e.statusCode, true
	case KeyRequestID:
		if e.requestID == nil {
			return nil, true
		}

		return *e.requestID, true
	case KeyRateLimitRemaining:
		if e.rateLimitRemaining == nil {
			return nil, true
		}

		return *e.rateLimitRemaining, true
	case KeyRetryAfter:
		if e.retryAfter == nil {
			return nil, true
		}

		return *e.retryAfter, true
	case KeySuccess:
		return e.Success(), true
	}

	return nil, false
}

// Path walks nested objects and arrays of the body. Path elements are
// strings for object keys and ints for array indexes.
func (e *Envelope) Path(elems ...any) (any, error) {
	current := e.data

	for i, elem := range elems {
		switch key := elem.(type) {
		case string:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, &KeyError{Key: key, Detail: fmt.Sprintf("path element %d (%q) is not an object key", i, key)}
			}

			next, ok := m[key]
			if !ok {
				return nil, &KeyError{Key: key}
			}

			current = next
		case int:
			list, ok := current.([]any)
			if !ok || key < 0 || key >= len(list) {
				return nil, &KeyError{Key: strconv.Itoa(key), Detail: fmt.Sprintf("path element %d (%d) is not a valid index", i, key)}
			}

			current = list[key]
		default:
			return nil, &KeyError{Key: fmt.Sprint(elem), Detail: fmt.Sprintf("unsupported path element %T", elem)}
		}
	}

	return cloneValue(current), nil
}

// Page returns the pagination summary of a list body.
func (e *Envelope) Page() (PageInfo, bool) {
	meta, err := e.Path("meta")
	if err != nil {
		return PageInfo{}, false
	}

	m, ok := meta.(map[string]any)
	if !ok {
		return PageInfo{}, false
	}

	var info PageInfo

	info.CurrentPage, _ = toInt(m["current_page"])
	info.PerPage, _ = toInt(m["per_page"])
	info.Total, _ = toInt(m["total"])
	info.LastPage, _ = toInt(m["last_page"])

	return info, true
}

// Keys returns the reserved top-level keys in a fixed order.
func (e *Envelope) Keys() []string {
	keys := make([]string, len(reservedKeys))
	copy(keys, reservedKeys)

	return keys
}

// Values returns the top-level values in Keys order.
func (e *Envelope) Values() []any {
	values := make([]any, 0, len(reservedKeys))
	for _, key := range reservedKeys {
		value, _ := e.topLevel(key)
		values = append(values, value)
	}

	return values
}

// Items returns the top-level key/value pairs in Keys order.
func (e *Envelope) Items() []Item {
	items := make([]Item, 0, len(reservedKeys))
	for _, key := range reservedKeys {
		value, _ := e.topLevel(key)
		items = append(items, Item{Key: key, Value: value})
	}

	return items
}

// ToMap returns the full state as a plain nested map. Headers are keyed by
// their original names.
func (e *Envelope) ToMap() map[string]any {
	out := make(map[string]any, len(reservedKeys))
	for _, key := range reservedKeys {
		value, _ := e.topLevel(key)
		out[key] = value
	}

	out[KeyHeaders] = e.headers.ToMap()

	return out
}

type jsonOptions struct {
	indent int
	ascii  bool
}

// JSONOption controls ToJSON formatting.
type JSONOption func(*jsonOptions)

// WithIndent pretty-prints with n spaces per level.
func WithIndent(n int) JSONOption {
	return func(o *jsonOptions) {
		o.indent = n
	}
}

// WithASCII escapes every non-ASCII character as \uXXXX.
func WithASCII(enabled bool) JSONOption {
	return func(o *jsonOptions) {
		o.ascii = enabled
	}
}

// ToJSON serializes ToMap. Options only change formatting.
func (e *Envelope) ToJSON(opts ...JSONOption) (string, error) {
	options := jsonOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	out, err := encodeJSON(e.ToMap(), options)
	if err != nil {
		return "", fmt.Errorf("encoding envelope: %w", err)
	}

	return out, nil
}

// MarshalJSON implements json.Marshaler with the compact ToJSON form.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	out, err := encodeJSON(e.ToMap(), jsonOptions{})
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

// String renders the body as compact JSON.
func (e *Envelope) String() string {
	out, err := encodeJSON(e.data, jsonOptions{})
	if err != nil {
		return fmt.Sprintf("%v", e.data)
	}

	return out
}

func encodeJSON(value any, options jsonOptions) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if options.indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", options.indent))
	}

	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	if options.ascii {
		out = escapeNonASCII(out)
	}

	return out, nil
}

func escapeNonASCII(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r -= 0x10000
			fmt.Fprintf(&b, `\u%04x\u%04x`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}

	return b.String()
}

type envelopeState struct {
	Data               any               `mapstructure:"data"`
	Headers            map[string]string `mapstructure:"headers"`
	StatusCode         int               `mapstructure:"status_code"`
	RequestID          *string           `mapstructure:"request_id"`
	RateLimitRemaining *int              `mapstructure:"rate_limit_remaining"`
	RetryAfter         *int              `mapstructure:"retry_after"`
}

// FromMap rebuilds an Envelope from the output of ToMap, or from that output
// after a JSON round trip. The success key is ignored since it is derived
// from status_code.
func FromMap(m map[string]any) (*Envelope, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil map", ErrInvalidEnvelope)
	}

	if _, ok := m[KeyStatusCode]; !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidEnvelope, KeyStatusCode)
	}

	var state envelopeState

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &state,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	return &Envelope{
		data:               normalizeData(cloneValue(state.Data)),
		headers:            HeadersFromMap(state.Headers),
		statusCode:         state.StatusCode,
		requestID:          state.RequestID,
		rateLimitRemaining: state.RateLimitRemaining,
		retryAfter:         state.RetryAfter,
	}, nil
}

// FromJSON rebuilds an Envelope from the output of ToJSON.
func FromJSON(data []byte) (*Envelope, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	return FromMap(m)
}

// Err returns an *APIError for non-2xx envelopes and nil otherwise.
func (e *Envelope) Err() error {
	if e.Success() {
		return nil
	}

	apiErr := &APIError{
		StatusCode: e.statusCode,
		RetryAfter: e.retryAfter,
	}

	if e.requestID != nil {
		apiErr.RequestID = *e.requestID
	}

	body, ok := e.data.(map[string]any)
	if !ok {
		return apiErr
	}

	if message, ok := body["message"].(string); ok {
		apiErr.Message = message
	}

	if fields, ok := body["errors"].(map[string]any); ok {
		apiErr.Errors = make(map[string][]string, len(fields))
		for field, raw := range fields {
			apiErr.Errors[field] = toStrings(raw)
		}
	}

	return apiErr
}

func toStrings(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}

		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()

		return int(i), err == nil
	default:
		return 0, false
	}
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}

		return out
	case []string:
		return copyStrings(v)
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			out[i] = cloneMap(item)
		}

		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}
