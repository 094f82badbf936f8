package mailersend

import (
	"net/url"
	"strings"
)

// SMS inbound route limits.
const (
	MaxSMSInboundName   = 191
	MaxSMSInboundURL    = 255
	MaxSMSInboundFilter = 255
)

// SMSInboundRequest identifies one SMS inbound route.
type SMSInboundRequest struct {
	inboundID string
}

// InboundID returns the route identifier.
func (r *SMSInboundRequest) InboundID() string {
	return r.inboundID
}

// SMSInboundListRequest lists SMS inbound routes.
type SMSInboundListRequest struct {
	listQuery
}

// SMSInboundCreateRequest creates an SMS inbound route.
type SMSInboundCreateRequest struct {
	jsonBody
}

// SMSInboundUpdateRequest updates an SMS inbound route.
type SMSInboundUpdateRequest struct {
	jsonBody
	SMSInboundRequest
}

// SMSInboundsBuilder assembles SMS inbound route requests.
type SMSInboundsBuilder struct {
	builder
	pagination

	inboundID   string
	numberID    string
	name        string
	forwardURL  string
	comparer    string
	filterValue string
	enabled     *bool
}

// NewSMSInboundsBuilder creates an SMS inbound routes builder.
func NewSMSInboundsBuilder() *SMSInboundsBuilder {
	return &SMSInboundsBuilder{}
}

// Page sets the page number.
func (b *SMSInboundsBuilder) Page(page int) *SMSInboundsBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *SMSInboundsBuilder) Limit(limit int) *SMSInboundsBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// InboundID addresses an existing route.
func (b *SMSInboundsBuilder) InboundID(id string) *SMSInboundsBuilder {
	if b.checkNotEmpty("sms_inbound_id", id) {
		b.inboundID = strings.TrimSpace(id)
	}

	return b
}

// SMSNumberID sets the receiving number, or filters the list.
func (b *SMSInboundsBuilder) SMSNumberID(id string) *SMSInboundsBuilder {
	if b.checkNotEmpty("sms_number_id", id) {
		b.numberID = strings.TrimSpace(id)
	}

	return b
}

// Name sets the route name.
func (b *SMSInboundsBuilder) Name(name string) *SMSInboundsBuilder {
	name = strings.TrimSpace(name)
	if b.checkNotEmpty("name", name) && b.check("name", name, "max=191", "cannot exceed 191 characters") {
		b.name = name
	}

	return b
}

// ForwardURL sets the endpoint receiving inbound messages.
func (b *SMSInboundsBuilder) ForwardURL(endpoint string) *SMSInboundsBuilder {
	endpoint = strings.TrimSpace(endpoint)
	if b.checkURL("forward_url", endpoint) &&
		b.check("forward_url", endpoint, "max=255", "cannot exceed 255 characters") {
		b.forwardURL = endpoint
	}

	return b
}

// Filter forwards only messages whose text matches.
func (b *SMSInboundsBuilder) Filter(comparer, value string) *SMSInboundsBuilder {
	if b.checkOneOf("filter.comparer", comparer, Comparers) &&
		b.checkNotEmpty("filter.value", value) &&
		b.check("filter.value", value, "max=255", "cannot exceed 255 characters") {
		b.comparer = comparer
		b.filterValue = value
	}

	return b
}

// Enabled toggles the route, or filters the list.
func (b *SMSInboundsBuilder) Enabled(enabled bool) *SMSInboundsBuilder {
	if !b.failed() {
		b.enabled = boolPtr(enabled)
	}

	return b
}

// BuildList returns the list request.
func (b *SMSInboundsBuilder) BuildList() (*SMSInboundListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.numberID != "" {
		query.Set("sms_number_id", b.numberID)
	}

	if b.enabled != nil {
		query.Set("enabled", formatBool(*b.enabled))
	}

	return &SMSInboundListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one route. Delete accepts it too.
func (b *SMSInboundsBuilder) BuildGet() (*SMSInboundRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_inbound_id", b.inboundID); err != nil {
		return nil, err
	}

	return &SMSInboundRequest{inboundID: b.inboundID}, nil
}

// BuildCreate returns the create request. Number, name and forward URL are
// required; the route is enabled unless Enabled(false) was set.
func (b *SMSInboundsBuilder) BuildCreate() (*SMSInboundCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("sms_number_id", b.numberID, "name", b.name, "forward_url", b.forwardURL); err != nil {
		return nil, err
	}

	body := b.body()
	if b.enabled == nil {
		body["enabled"] = true
	}

	return &SMSInboundCreateRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdate returns the update request. Only set fields are sent.
func (b *SMSInboundsBuilder) BuildUpdate() (*SMSInboundUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	body := b.body()
	if len(body) == 0 {
		return nil, &ValidationError{Field: "sms_inbound", Reason: "at least one field to update is required"}
	}

	return &SMSInboundUpdateRequest{jsonBody: jsonBody{body: body}, SMSInboundRequest: *target}, nil
}

func (b *SMSInboundsBuilder) body() map[string]any {
	body := map[string]any{}

	if b.numberID != "" {
		body["sms_number_id"] = b.numberID
	}

	if b.name != "" {
		body["name"] = b.name
	}

	if b.forwardURL != "" {
		body["forward_url"] = b.forwardURL
	}

	if b.comparer != "" {
		body["filter"] = map[string]any{"comparer": b.comparer, "value": b.filterValue}
	}

	if b.enabled != nil {
		body["enabled"] = *b.enabled
	}

	return body
}
