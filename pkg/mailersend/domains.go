package mailersend

import "net/url"

// DomainListRequest lists domains.
type DomainListRequest struct {
	listQuery
}

// DomainCreateRequest adds a sending domain.
type DomainCreateRequest struct {
	jsonBody
}

// DomainRequest identifies one domain. It serves get, delete, DNS records
// and verification calls.
type DomainRequest struct {
	domainID string
}

// DomainID returns the domain identifier.
func (r *DomainRequest) DomainID() string {
	return r.domainID
}

// DomainRecipientsRequest lists the recipients of one domain.
type DomainRecipientsRequest struct {
	listQuery

	domainID string
}

// DomainID returns the domain identifier.
func (r *DomainRecipientsRequest) DomainID() string {
	return r.domainID
}

// DomainSettingsRequest updates domain settings.
type DomainSettingsRequest struct {
	jsonBody

	domainID string
}

// DomainID returns the domain identifier.
func (r *DomainSettingsRequest) DomainID() string {
	return r.domainID
}

// DomainsBuilder assembles domain requests. Each Build method reads only the
// fields of its operation.
type DomainsBuilder struct {
	builder
	pagination

	domainID  string
	verified  *bool
	name      string
	subdomain map[string]string
	settings  map[string]any
}

// NewDomainsBuilder creates a domains builder.
func NewDomainsBuilder() *DomainsBuilder {
	return &DomainsBuilder{
		subdomain: map[string]string{},
		settings:  map[string]any{},
	}
}

// Page sets the page number.
func (b *DomainsBuilder) Page(page int) *DomainsBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *DomainsBuilder) Limit(limit int) *DomainsBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// Verified filters the list by verification state.
func (b *DomainsBuilder) Verified(verified bool) *DomainsBuilder {
	if !b.failed() {
		b.verified = boolPtr(verified)
	}

	return b
}

// DomainID sets the domain to operate on.
func (b *DomainsBuilder) DomainID(domainID string) *DomainsBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// Name sets the domain name to create.
func (b *DomainsBuilder) Name(name string) *DomainsBuilder {
	if b.check("name", name, "required,fqdn", "must be a fully qualified domain name") {
		b.name = name
	}

	return b
}

// ReturnPathSubdomain sets the return path subdomain for creation.
func (b *DomainsBuilder) ReturnPathSubdomain(subdomain string) *DomainsBuilder {
	return b.setSubdomain("return_path_subdomain", subdomain)
}

// CustomTrackingSubdomain sets the tracking subdomain for creation.
func (b *DomainsBuilder) CustomTrackingSubdomain(subdomain string) *DomainsBuilder {
	return b.setSubdomain("custom_tracking_subdomain", subdomain)
}

// InboundRoutingSubdomain sets the inbound routing subdomain for creation.
func (b *DomainsBuilder) InboundRoutingSubdomain(subdomain string) *DomainsBuilder {
	return b.setSubdomain("inbound_routing_subdomain", subdomain)
}

func (b *DomainsBuilder) setSubdomain(field, subdomain string) *DomainsBuilder {
	if b.check(field, subdomain, "required,alphanum", "must be alphanumeric") {
		b.subdomain[field] = subdomain
	}

	return b
}

// SendPaused pauses or resumes sending.
func (b *DomainsBuilder) SendPaused(paused bool) *DomainsBuilder {
	return b.setting("send_paused", paused)
}

// TrackClicks toggles click tracking.
func (b *DomainsBuilder) TrackClicks(enabled bool) *DomainsBuilder {
	return b.setting("track_clicks", enabled)
}

// TrackOpens toggles open tracking.
func (b *DomainsBuilder) TrackOpens(enabled bool) *DomainsBuilder {
	return b.setting("track_opens", enabled)
}

// TrackUnsubscribe toggles the unsubscribe link.
func (b *DomainsBuilder) TrackUnsubscribe(enabled bool) *DomainsBuilder {
	return b.setting("track_unsubscribe", enabled)
}

// TrackUnsubscribeHTML sets the HTML unsubscribe footer.
func (b *DomainsBuilder) TrackUnsubscribeHTML(html string) *DomainsBuilder {
	if b.checkNotEmpty("track_unsubscribe_html", html) {
		b.settings["track_unsubscribe_html"] = html
	}

	return b
}

// TrackUnsubscribePlain sets the plain text unsubscribe footer.
func (b *DomainsBuilder) TrackUnsubscribePlain(text string) *DomainsBuilder {
	if b.checkNotEmpty("track_unsubscribe_plain", text) {
		b.settings["track_unsubscribe_plain"] = text
	}

	return b
}

// TrackContent toggles content tracking.
func (b *DomainsBuilder) TrackContent(enabled bool) *DomainsBuilder {
	return b.setting("track_content", enabled)
}

// CustomTracking toggles the custom tracking domain and sets its subdomain.
func (b *DomainsBuilder) CustomTracking(enabled bool, subdomain string) *DomainsBuilder {
	if enabled && !b.check("custom_tracking_subdomain", subdomain, "required,alphanum", "must be alphanumeric") {
		return b
	}

	b.setting("custom_tracking_enabled", enabled)

	if enabled {
		b.settings["custom_tracking_subdomain"] = subdomain
	}

	return b
}

// PrecedenceBulk toggles the Precedence: bulk header for the domain.
func (b *DomainsBuilder) PrecedenceBulk(enabled bool) *DomainsBuilder {
	return b.setting("precedence_bulk", enabled)
}

// IgnoreDuplicatedRecipients toggles duplicate recipient filtering.
func (b *DomainsBuilder) IgnoreDuplicatedRecipients(enabled bool) *DomainsBuilder {
	return b.setting("ignore_duplicated_recipients", enabled)
}

func (b *DomainsBuilder) setting(key string, value bool) *DomainsBuilder {
	if !b.failed() {
		b.settings[key] = value
	}

	return b
}

// BuildList returns the list request. Page, limit and verified are used.
func (b *DomainsBuilder) BuildList() (*DomainListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.verified != nil {
		query.Set("verified", formatBool(*b.verified))
	}

	return &DomainListRequest{listQuery{query: query}}, nil
}

// BuildCreate returns the create request. Name is required.
func (b *DomainsBuilder) BuildCreate() (*DomainCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("name", b.name); err != nil {
		return nil, err
	}

	body := map[string]any{"name": b.name}
	for key, value := range b.subdomain {
		body[key] = value
	}

	return &DomainCreateRequest{jsonBody{body: body}}, nil
}

// BuildGet returns a request for one domain. It is also accepted by Delete,
// DNSRecords and VerificationStatus.
func (b *DomainsBuilder) BuildGet() (*DomainRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	return &DomainRequest{domainID: b.domainID}, nil
}

// BuildDelete is BuildGet under the name of the operation.
func (b *DomainsBuilder) BuildDelete() (*DomainRequest, error) {
	return b.BuildGet()
}

// BuildRecipients returns the domain recipients request.
func (b *DomainsBuilder) BuildRecipients() (*DomainRecipientsRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	query := url.Values{}
	b.encode(query)

	return &DomainRecipientsRequest{listQuery: listQuery{query: query}, domainID: b.domainID}, nil
}

// BuildUpdateSettings returns the settings update. At least one setting is
// required.
func (b *DomainsBuilder) BuildUpdateSettings() (*DomainSettingsRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	if len(b.settings) == 0 {
		return nil, &ValidationError{Field: "settings", Reason: "at least one setting is required"}
	}

	return &DomainSettingsRequest{jsonBody: jsonBody{body: cloneMap(b.settings)}, domainID: b.domainID}, nil
}
