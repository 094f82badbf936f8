package mailersend

import (
	"fmt"
	"net/url"
)

// Inbound filter types.
const (
	FilterCatchAll       = "catch_all"
	FilterCatchRecipient = "catch_recipient"
	FilterMatchAll       = "match_all"
	FilterMatchSender    = "match_sender"
	FilterMatchDomain    = "match_domain"
	FilterMatchHeader    = "match_header"
)

// Filter comparers, shared by email and SMS inbound routes.
const (
	ComparerEqual         = "equal"
	ComparerNotEqual      = "not-equal"
	ComparerContains      = "contains"
	ComparerNotContains   = "not-contains"
	ComparerStartsWith    = "starts-with"
	ComparerEndsWith      = "ends-with"
	ComparerNotStartsWith = "not-starts-with"
	ComparerNotEndsWith   = "not-ends-with"
)

// Inbound forward types.
const (
	ForwardEmail   = "email"
	ForwardWebhook = "webhook"
)

// Inbound limits.
const (
	MaxInboundFilters     = 5
	MaxInboundFilterValue = 191
	MaxInboundPriority    = 100
)

// Comparers lists every filter comparer.
var Comparers = []string{
	ComparerEqual, ComparerNotEqual, ComparerContains, ComparerNotContains,
	ComparerStartsWith, ComparerEndsWith, ComparerNotStartsWith, ComparerNotEndsWith,
}

var matchTypes = []string{"all", "one"}

// InboundListRequest lists inbound routes.
type InboundListRequest struct {
	listQuery
}

// InboundRequest identifies one inbound route.
type InboundRequest struct {
	inboundID string
}

// InboundID returns the route identifier.
func (r *InboundRequest) InboundID() string {
	return r.inboundID
}

// InboundCreateRequest creates an inbound route.
type InboundCreateRequest struct {
	jsonBody
}

// InboundUpdateRequest updates an inbound route.
type InboundUpdateRequest struct {
	jsonBody
	InboundRequest
}

type filterGroup struct {
	kind    string
	filters []map[string]any
}

func (g *filterGroup) payload() map[string]any {
	out := map[string]any{"type": g.kind}
	if len(g.filters) > 0 {
		filters := make([]any, len(g.filters))
		for i, f := range g.filters {
			filters[i] = cloneMap(f)
		}

		out["filters"] = filters
	}

	return out
}

// InboundBuilder assembles inbound routing requests.
type InboundBuilder struct {
	builder
	pagination

	inboundID       string
	domainID        string
	name            string
	domainEnabled   bool
	inboundDomain   string
	inboundPriority *int
	catchType       string
	matchType       string
	catchFilter     *filterGroup
	matchFilter     *filterGroup
	forwards        []map[string]any
}

// NewInboundBuilder creates an inbound routing builder.
func NewInboundBuilder() *InboundBuilder {
	return &InboundBuilder{}
}

// Page sets the page number.
func (b *InboundBuilder) Page(page int) *InboundBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *InboundBuilder) Limit(limit int) *InboundBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// InboundID addresses an existing route.
func (b *InboundBuilder) InboundID(inboundID string) *InboundBuilder {
	if b.checkNotEmpty("inbound_id", inboundID) {
		b.inboundID = inboundID
	}

	return b
}

// DomainID sets the domain of the route, or filters the list.
func (b *InboundBuilder) DomainID(domainID string) *InboundBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// Name sets the route name.
func (b *InboundBuilder) Name(name string) *InboundBuilder {
	if b.checkNotEmpty("name", name) && b.check("name", name, "max=191", "cannot exceed 191 characters") {
		b.name = name
	}

	return b
}

// EnableDomain receives mail on an inbound domain with the given priority.
func (b *InboundBuilder) EnableDomain(domain string, priority int) *InboundBuilder {
	if b.check("inbound_domain", domain, "required,fqdn", "must be a fully qualified domain name") &&
		b.checkRange("inbound_priority", priority, 0, MaxInboundPriority) {
		b.domainEnabled = true
		b.inboundDomain = domain
		b.inboundPriority = intPtr(priority)
	}

	return b
}

// DisableDomain receives mail on the generated inbound address only.
func (b *InboundBuilder) DisableDomain() *InboundBuilder {
	if !b.failed() {
		b.domainEnabled = false
		b.inboundDomain = ""
		b.inboundPriority = nil
	}

	return b
}

// CatchType sets whether all or one catch filter must match.
func (b *InboundBuilder) CatchType(catchType string) *InboundBuilder {
	if b.checkOneOf("catch_type", catchType, matchTypes) {
		b.catchType = catchType
	}

	return b
}

// MatchType sets whether all or one match filter must match.
func (b *InboundBuilder) MatchType(matchType string) *InboundBuilder {
	if b.checkOneOf("match_type", matchType, matchTypes) {
		b.matchType = matchType
	}

	return b
}

// CatchAll accepts mail for every recipient.
func (b *InboundBuilder) CatchAll() *InboundBuilder {
	if !b.failed() {
		b.catchFilter = &filterGroup{kind: FilterCatchAll}
	}

	return b
}

// CatchRecipient accepts mail for recipients matching the filter.
func (b *InboundBuilder) CatchRecipient(comparer, value string) *InboundBuilder {
	return b.addFilter(&b.catchFilter, "catch_filter", FilterCatchRecipient, "", comparer, value)
}

// MatchAll forwards every caught message.
func (b *InboundBuilder) MatchAll() *InboundBuilder {
	if !b.failed() {
		b.matchFilter = &filterGroup{kind: FilterMatchAll}
	}

	return b
}

// MatchSender forwards messages whose sender matches.
func (b *InboundBuilder) MatchSender(comparer, value string) *InboundBuilder {
	return b.addFilter(&b.matchFilter, "match_filter", FilterMatchSender, "", comparer, value)
}

// MatchDomain forwards messages whose sender domain matches.
func (b *InboundBuilder) MatchDomain(comparer, value string) *InboundBuilder {
	return b.addFilter(&b.matchFilter, "match_filter", FilterMatchDomain, "", comparer, value)
}

// MatchHeader forwards messages carrying a matching header.
func (b *InboundBuilder) MatchHeader(key, comparer, value string) *InboundBuilder {
	if !b.checkNotEmpty("match_filter.key", key) {
		return b
	}

	return b.addFilter(&b.matchFilter, "match_filter", FilterMatchHeader, key, comparer, value)
}

func (b *InboundBuilder) addFilter(group **filterGroup, field, kind, key, comparer, value string) *InboundBuilder {
	if !b.checkOneOf(field+".comparer", comparer, Comparers) ||
		!b.checkNotEmpty(field+".value", value) ||
		!b.check(field+".value", value, fmt.Sprintf("max=%d", MaxInboundFilterValue), "cannot exceed 191 characters") {
		return b
	}

	if *group == nil || (*group).kind != kind {
		*group = &filterGroup{kind: kind}
	}

	if len((*group).filters) >= MaxInboundFilters {
		b.fail(field, value, fmt.Sprintf("maximum %d filters allowed", MaxInboundFilters))

		return b
	}

	filter := map[string]any{"comparer": comparer, "value": value}
	if key != "" {
		filter["key"] = key
	}

	(*group).filters = append((*group).filters, filter)

	return b
}

// ForwardToEmail forwards matched mail to an address.
func (b *InboundBuilder) ForwardToEmail(email string) *InboundBuilder {
	if b.checkEmail("forwards.value", email) {
		b.forwards = append(b.forwards, map[string]any{"type": ForwardEmail, "value": email})
	}

	return b
}

// ForwardToWebhook posts matched mail to a URL signed with secret.
func (b *InboundBuilder) ForwardToWebhook(webhookURL, secret string) *InboundBuilder {
	if !b.checkURL("forwards.value", webhookURL) {
		return b
	}

	forward := map[string]any{"type": ForwardWebhook, "value": webhookURL}
	if secret != "" {
		forward["secret"] = secret
	}

	b.forwards = append(b.forwards, forward)

	return b
}

// BuildList returns the list request. Page, limit and domain ID are used.
func (b *InboundBuilder) BuildList() (*InboundListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	return &InboundListRequest{listQuery{query: query}}, nil
}

// BuildGet returns a request for one route. Delete accepts it too.
func (b *InboundBuilder) BuildGet() (*InboundRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("inbound_id", b.inboundID); err != nil {
		return nil, err
	}

	return &InboundRequest{inboundID: b.inboundID}, nil
}

// BuildCreate returns the create request. Domain ID, name, both filters and
// at least one forward are required.
func (b *InboundBuilder) BuildCreate() (*InboundCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	body, err := b.writeBody()
	if err != nil {
		return nil, err
	}

	return &InboundCreateRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdate returns the update request; the whole route is replaced, so
// the same fields as BuildCreate are required plus the inbound ID.
func (b *InboundBuilder) BuildUpdate() (*InboundUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	body, err := b.writeBody()
	if err != nil {
		return nil, err
	}

	return &InboundUpdateRequest{jsonBody: jsonBody{body: body}, InboundRequest: *target}, nil
}

func (b *InboundBuilder) writeBody() (map[string]any, error) {
	if err := requireEach("domain_id", b.domainID, "name", b.name); err != nil {
		return nil, err
	}

	if b.catchFilter == nil {
		return nil, &ValidationError{Field: "catch_filter", Reason: "is required"}
	}

	if b.matchFilter == nil {
		return nil, &ValidationError{Field: "match_filter", Reason: "is required"}
	}

	if len(b.forwards) == 0 {
		return nil, &ValidationError{Field: "forwards", Reason: "at least one forward is required"}
	}

	forwards := make([]any, len(b.forwards))
	for i, f := range b.forwards {
		forwards[i] = cloneMap(f)
	}

	body := map[string]any{
		"domain_id":      b.domainID,
		"name":           b.name,
		"domain_enabled": b.domainEnabled,
		"catch_filter":   b.catchFilter.payload(),
		"match_filter":   b.matchFilter.payload(),
		"forwards":       forwards,
	}

	if b.domainEnabled {
		body["inbound_domain"] = b.inboundDomain
		body["inbound_priority"] = *b.inboundPriority
	}

	if b.catchType != "" {
		body["catch_type"] = b.catchType
	}

	if b.matchType != "" {
		body["match_type"] = b.matchType
	}

	return body, nil
}
