package mailersend

import "net/url"

// IdentityListRequest lists sender identities.
type IdentityListRequest struct {
	listQuery
}

// IdentityCreateRequest creates a sender identity.
type IdentityCreateRequest struct {
	jsonBody
}

// IdentityRequest identifies a sender identity by ID or by email address.
type IdentityRequest struct {
	identityID string
	email      string
}

// IdentityID returns the identity ID, empty when addressed by email.
func (r *IdentityRequest) IdentityID() string {
	return r.identityID
}

// Email returns the identity email, empty when addressed by ID.
func (r *IdentityRequest) Email() string {
	return r.email
}

// ByEmail reports whether the identity is addressed by email.
func (r *IdentityRequest) ByEmail() bool {
	return r.email != ""
}

// IdentityUpdateRequest updates a sender identity.
type IdentityUpdateRequest struct {
	jsonBody
	IdentityRequest
}

// IdentitiesBuilder assembles sender identity requests.
type IdentitiesBuilder struct {
	builder
	pagination

	domainID     string
	identityID   string
	email        string
	name         string
	replyToEmail string
	replyToName  string
	addNote      *bool
	personalNote string
}

// NewIdentitiesBuilder creates a sender identities builder.
func NewIdentitiesBuilder() *IdentitiesBuilder {
	return &IdentitiesBuilder{}
}

// Page sets the page number.
func (b *IdentitiesBuilder) Page(page int) *IdentitiesBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *IdentitiesBuilder) Limit(limit int) *IdentitiesBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DomainID filters the list, or sets the domain of a new identity.
func (b *IdentitiesBuilder) DomainID(domainID string) *IdentitiesBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// IdentityID addresses an identity by ID.
func (b *IdentitiesBuilder) IdentityID(identityID string) *IdentitiesBuilder {
	if b.checkNotEmpty("identity_id", identityID) {
		b.identityID = identityID
	}

	return b
}

// Email sets the identity address. It addresses the identity in the
// ByEmail operations.
func (b *IdentitiesBuilder) Email(email string) *IdentitiesBuilder {
	if b.checkEmail("email", email) {
		b.email = email
	}

	return b
}

// Name sets the sender name.
func (b *IdentitiesBuilder) Name(name string) *IdentitiesBuilder {
	if b.checkNotEmpty("name", name) {
		b.name = name
	}

	return b
}

// ReplyTo sets the reply-to address and name.
func (b *IdentitiesBuilder) ReplyTo(email, name string) *IdentitiesBuilder {
	if b.checkEmail("reply_to_email", email) {
		b.replyToEmail = email
		b.replyToName = name
	}

	return b
}

// PersonalNote adds a note to the verification email.
func (b *IdentitiesBuilder) PersonalNote(note string) *IdentitiesBuilder {
	if b.checkNotEmpty("personal_note", note) {
		b.addNote = boolPtr(true)
		b.personalNote = note
	}

	return b
}

// NoPersonalNote disables the note.
func (b *IdentitiesBuilder) NoPersonalNote() *IdentitiesBuilder {
	if !b.failed() {
		b.addNote = boolPtr(false)
		b.personalNote = ""
	}

	return b
}

// BuildList returns the list request. Page, limit and domain ID are used.
func (b *IdentitiesBuilder) BuildList() (*IdentityListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	return &IdentityListRequest{listQuery{query: query}}, nil
}

func (b *IdentitiesBuilder) body() map[string]any {
	body := map[string]any{}

	if b.domainID != "" {
		body["domain_id"] = b.domainID
	}

	if b.email != "" {
		body["email"] = b.email
	}

	if b.name != "" {
		body["name"] = b.name
	}

	if b.replyToEmail != "" {
		body["reply_to_email"] = b.replyToEmail
	}

	if b.replyToName != "" {
		body["reply_to_name"] = b.replyToName
	}

	if b.addNote != nil {
		body["add_note"] = *b.addNote
	}

	if b.personalNote != "" {
		body["personal_note"] = b.personalNote
	}

	return body
}

// BuildCreate returns the create request. Domain ID, email and name are
// required.
func (b *IdentitiesBuilder) BuildCreate() (*IdentityCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("domain_id", b.domainID, "email", b.email, "name", b.name); err != nil {
		return nil, err
	}

	return &IdentityCreateRequest{jsonBody{body: b.body()}}, nil
}

// BuildGet returns a request addressing the identity by ID.
func (b *IdentitiesBuilder) BuildGet() (*IdentityRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("identity_id", b.identityID); err != nil {
		return nil, err
	}

	return &IdentityRequest{identityID: b.identityID}, nil
}

// BuildGetByEmail returns a request addressing the identity by email.
func (b *IdentitiesBuilder) BuildGetByEmail() (*IdentityRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("email", b.email); err != nil {
		return nil, err
	}

	return &IdentityRequest{email: b.email}, nil
}

// BuildUpdate returns an update addressing the identity by ID. The email
// field, when set, is sent as the new address.
func (b *IdentitiesBuilder) BuildUpdate() (*IdentityUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	return b.update(*target)
}

// BuildUpdateByEmail returns an update addressing the identity by email.
func (b *IdentitiesBuilder) BuildUpdateByEmail() (*IdentityUpdateRequest, error) {
	target, err := b.BuildGetByEmail()
	if err != nil {
		return nil, err
	}

	return b.update(*target)
}

func (b *IdentitiesBuilder) update(target IdentityRequest) (*IdentityUpdateRequest, error) {
	body := b.body()
	delete(body, "domain_id")

	if target.ByEmail() {
		delete(body, "email")
	}

	if len(body) == 0 {
		return nil, &ValidationError{Field: "name", Reason: "at least one field to update is required"}
	}

	return &IdentityUpdateRequest{jsonBody: jsonBody{body: body}, IdentityRequest: target}, nil
}
