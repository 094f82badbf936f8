package mailersend

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Pagination bounds shared by most list endpoints.
const (
	MinPage      = 1
	MinLimit     = 10
	MaxLimit     = 100
	DefaultLimit = 25
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return validate
}

// validateStruct runs the struct tags of a payload and reports the first
// failing field.
func validateStruct(payload any) error {
	err := getValidator().Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the concrete type
	if !ok || len(fieldErrs) == 0 {
		return &ValidationError{Field: "request", Reason: err.Error()}
	}

	first := fieldErrs[0]

	return &ValidationError{
		Field:  first.Namespace()[strings.Index(first.Namespace(), ".")+1:],
		Value:  first.Value(),
		Reason: describeTag(first),
	}
}

func describeTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be an E.164 phone number"
	case "url", "http_url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return "failed " + e.Tag() + " validation"
	}
}

// builder holds the sticky error shared by every Builder. The first failing
// setter wins; later setters are ignored and every Build method returns it.
type builder struct {
	err *ValidationError
}

// Err returns the first setter failure, or nil.
func (b *builder) Err() error {
	if b.err == nil {
		return nil
	}

	return b.err
}

func (b *builder) failed() bool {
	return b.err != nil
}

func (b *builder) fail(field string, value any, reason string) {
	if b.err == nil {
		b.err = &ValidationError{Field: field, Value: value, Reason: reason}
	}
}

func (b *builder) check(field string, value any, tag, reason string) bool {
	if b.err != nil {
		return false
	}

	if err := getValidator().Var(value, tag); err != nil {
		b.fail(field, value, reason)

		return false
	}

	return true
}

func (b *builder) checkNotEmpty(field, value string) bool {
	if b.err != nil {
		return false
	}

	if strings.TrimSpace(value) == "" {
		b.fail(field, nil, "cannot be empty")

		return false
	}

	return true
}

func (b *builder) checkEmail(field, value string) bool {
	return b.check(field, value, "required,email", "must be a valid email address")
}

func (b *builder) checkPhone(field, value string) bool {
	return b.check(field, value, "required,e164", "must be an E.164 phone number such as +12025550123")
}

func (b *builder) checkURL(field, value string) bool {
	return b.check(field, value, "required,url", "must be a valid URL")
}

func (b *builder) checkOneOf(field, value string, allowed []string) bool {
	if b.err != nil {
		return false
	}

	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}

	b.fail(field, value, "must be one of: "+strings.Join(allowed, ", "))

	return false
}

func (b *builder) checkRange(field string, value, lower, upper int) bool {
	return b.check(field, value, fmt.Sprintf("min=%d,max=%d", lower, upper),
		fmt.Sprintf("must be between %d and %d", lower, upper))
}

func (b *builder) checkPage(page int) bool {
	return b.check("page", page, "min=1", "must be greater than 0")
}

func (b *builder) checkLimit(limit int) bool {
	return b.checkRange("limit", limit, MinLimit, MaxLimit)
}

func (b *builder) checkTimestamp(field string, value int64) bool {
	return b.check(field, value, "gt=0", "must be a positive unix timestamp")
}

// requireSet fails a Build method when a required field was never set.
func requireSet(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}

	return nil
}

// requireEach checks name/value pairs in order.
func requireEach(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := requireSet(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)

	return out
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}

// pagination is embedded by builders of paginated list endpoints.
type pagination struct {
	page  *int
	limit *int
}

func (p pagination) encode(query url.Values) {
	if p.page != nil {
		query.Set("page", strconv.Itoa(*p.page))
	}

	if p.limit != nil {
		query.Set("limit", strconv.Itoa(*p.limit))
	}
}

// listQuery is embedded by list requests.
type listQuery struct {
	query url.Values
}

// Query returns a copy of the query string parameters.
func (q listQuery) Query() url.Values {
	out := make(url.Values, len(q.query))
	for key, values := range q.query {
		out[key] = copyStrings(values)
	}

	return out
}

// jsonBody is embedded by requests that send a JSON object.
type jsonBody struct {
	body map[string]any
}

// Payload returns a copy of the JSON body.
func (b jsonBody) Payload() any {
	return cloneMap(b.body)
}

func unixTime(t time.Time) int64 {
	return t.UTC().Unix()
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

func stringsToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}

	return out
}
