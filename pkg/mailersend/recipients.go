package mailersend

import "net/url"

// SuppressionKind names a suppression list.
type SuppressionKind string

// Suppression lists.
const (
	SuppressionBlocklist      SuppressionKind = "blocklist"
	SuppressionHardBounces    SuppressionKind = "hard-bounces"
	SuppressionSpamComplaints SuppressionKind = "spam-complaints"
	SuppressionUnsubscribes   SuppressionKind = "unsubscribes"
	SuppressionOnHold         SuppressionKind = "on-hold-list"
)

// SuppressionKinds lists the four suppression lists that accept additions.
var SuppressionKinds = []SuppressionKind{
	SuppressionBlocklist, SuppressionHardBounces, SuppressionSpamComplaints, SuppressionUnsubscribes,
}

// Valid reports whether k is a known list.
func (k SuppressionKind) Valid() bool {
	return k == SuppressionOnHold || k.Writable()
}

// Writable reports whether entries can be added to the list.
func (k SuppressionKind) Writable() bool {
	for _, kind := range SuppressionKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// RecipientListRequest lists recipients.
type RecipientListRequest struct {
	listQuery
}

// RecipientRequest identifies one recipient.
type RecipientRequest struct {
	recipientID string
}

// RecipientID returns the recipient identifier.
func (r *RecipientRequest) RecipientID() string {
	return r.recipientID
}

// SuppressionListRequest lists one suppression list.
type SuppressionListRequest struct {
	listQuery

	kind SuppressionKind
}

// Kind returns the suppression list.
func (r *SuppressionListRequest) Kind() SuppressionKind {
	return r.kind
}

// suppressionTarget names the suppression list a write applies to.
type suppressionTarget struct {
	kind SuppressionKind
}

// Kind returns the suppression list.
func (t suppressionTarget) Kind() SuppressionKind {
	return t.kind
}

// SuppressionAddRequest adds entries to one suppression list.
type SuppressionAddRequest struct {
	jsonBody
	suppressionTarget
}

// SuppressionDeleteRequest removes entries from one suppression list.
type SuppressionDeleteRequest struct {
	jsonBody
	suppressionTarget
}

// RecipientsBuilder assembles recipient and suppression list requests.
type RecipientsBuilder struct {
	builder
	pagination

	domainID    string
	recipientID string
	recipients  []string
	patterns    []string
	ids         []string
	all         bool
}

// NewRecipientsBuilder creates a recipients builder.
func NewRecipientsBuilder() *RecipientsBuilder {
	return &RecipientsBuilder{}
}

// Page sets the page number.
func (b *RecipientsBuilder) Page(page int) *RecipientsBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *RecipientsBuilder) Limit(limit int) *RecipientsBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DomainID scopes the request to a domain.
func (b *RecipientsBuilder) DomainID(domainID string) *RecipientsBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// RecipientID sets the recipient to fetch or delete.
func (b *RecipientsBuilder) RecipientID(recipientID string) *RecipientsBuilder {
	if b.checkNotEmpty("recipient_id", recipientID) {
		b.recipientID = recipientID
	}

	return b
}

// Recipient adds email addresses to suppress.
func (b *RecipientsBuilder) Recipient(emails ...string) *RecipientsBuilder {
	for _, email := range emails {
		if !b.checkEmail("recipients", email) {
			return b
		}

		b.recipients = append(b.recipients, email)
	}

	return b
}

// Pattern adds blocklist patterns such as ".*@example.com".
func (b *RecipientsBuilder) Pattern(patterns ...string) *RecipientsBuilder {
	for _, pattern := range patterns {
		if !b.checkNotEmpty("patterns", pattern) {
			return b
		}

		b.patterns = append(b.patterns, pattern)
	}

	return b
}

// ID adds suppression entry IDs to delete.
func (b *RecipientsBuilder) ID(ids ...string) *RecipientsBuilder {
	for _, id := range ids {
		if !b.checkNotEmpty("ids", id) {
			return b
		}

		b.ids = append(b.ids, id)
	}

	return b
}

// All deletes every entry of the list instead of selected IDs.
func (b *RecipientsBuilder) All() *RecipientsBuilder {
	if !b.failed() {
		b.all = true
	}

	return b
}

// BuildList returns the recipients list request.
func (b *RecipientsBuilder) BuildList() (*RecipientListRequest, error) {
	query, err := b.buildQuery()
	if err != nil {
		return nil, err
	}

	return &RecipientListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one recipient. Delete accepts it too.
func (b *RecipientsBuilder) BuildGet() (*RecipientRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("recipient_id", b.recipientID); err != nil {
		return nil, err
	}

	return &RecipientRequest{recipientID: b.recipientID}, nil
}

// BuildListSuppressions returns the list request of one suppression list.
func (b *RecipientsBuilder) BuildListSuppressions(kind SuppressionKind) (*SuppressionListRequest, error) {
	if err := checkKind(kind, false); err != nil {
		return nil, err
	}

	query, err := b.buildQuery()
	if err != nil {
		return nil, err
	}

	return &SuppressionListRequest{listQuery: listQuery{query: query}, kind: kind}, nil
}

// BuildAddSuppressions returns the add request. Domain ID is required, and
// at least one of recipients or patterns; patterns are only accepted by the
// blocklist.
func (b *RecipientsBuilder) BuildAddSuppressions(kind SuppressionKind) (*SuppressionAddRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := checkKind(kind, true); err != nil {
		return nil, err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	if len(b.patterns) > 0 && kind != SuppressionBlocklist {
		return nil, &ValidationError{Field: "patterns", Value: string(kind), Reason: "patterns are only supported by the blocklist"}
	}

	if len(b.recipients) == 0 && len(b.patterns) == 0 {
		return nil, &ValidationError{Field: "recipients", Reason: "at least one of recipients or patterns is required"}
	}

	body := map[string]any{"domain_id": b.domainID}
	if len(b.recipients) > 0 {
		body["recipients"] = stringsToAny(b.recipients)
	}

	if len(b.patterns) > 0 {
		body["patterns"] = stringsToAny(b.patterns)
	}

	return &SuppressionAddRequest{jsonBody: jsonBody{body: body}, suppressionTarget: suppressionTarget{kind: kind}}, nil
}

// BuildDeleteSuppressions returns the delete request. Either IDs or All is
// required, not both.
func (b *RecipientsBuilder) BuildDeleteSuppressions(kind SuppressionKind) (*SuppressionDeleteRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := checkKind(kind, false); err != nil {
		return nil, err
	}

	if len(b.ids) == 0 && !b.all {
		return nil, &ValidationError{Field: "ids", Reason: "either ids or all is required"}
	}

	if len(b.ids) > 0 && b.all {
		return nil, &ValidationError{Field: "all", Reason: "cannot be combined with ids"}
	}

	body := map[string]any{}
	if b.domainID != "" {
		body["domain_id"] = b.domainID
	}

	if b.all {
		body["all"] = true
	} else {
		body["ids"] = stringsToAny(b.ids)
	}

	return &SuppressionDeleteRequest{jsonBody: jsonBody{body: body}, suppressionTarget: suppressionTarget{kind: kind}}, nil
}

func (b *RecipientsBuilder) buildQuery() (url.Values, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	return query, nil
}

func checkKind(kind SuppressionKind, write bool) error {
	if !kind.Valid() || (write && !kind.Writable()) {
		return &ValidationError{Field: "kind", Value: string(kind), Reason: "is not a supported suppression list"}
	}

	return nil
}
