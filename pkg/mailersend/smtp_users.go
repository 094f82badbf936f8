package mailersend

import (
	"net/url"
	"strings"
)

// MaxSMTPUserName bounds SMTP user names.
const MaxSMTPUserName = 50

// SMTPUserListRequest lists the SMTP users of a domain.
type SMTPUserListRequest struct {
	listQuery

	domainID string
}

// DomainID returns the domain whose users are listed.
func (r *SMTPUserListRequest) DomainID() string {
	return r.domainID
}

// SMTPUserRequest identifies one SMTP user of a domain.
type SMTPUserRequest struct {
	domainID   string
	smtpUserID string
}

// DomainID returns the owning domain.
func (r *SMTPUserRequest) DomainID() string {
	return r.domainID
}

// SMTPUserID returns the SMTP user identifier.
func (r *SMTPUserRequest) SMTPUserID() string {
	return r.smtpUserID
}

// SMTPUserCreateRequest creates an SMTP user on a domain.
type SMTPUserCreateRequest struct {
	jsonBody

	domainID string
}

// DomainID returns the owning domain.
func (r *SMTPUserCreateRequest) DomainID() string {
	return r.domainID
}

// SMTPUserUpdateRequest updates an SMTP user.
type SMTPUserUpdateRequest struct {
	jsonBody
	SMTPUserRequest
}

// SMTPUsersBuilder assembles SMTP user requests. Every request is scoped to
// a domain.
type SMTPUsersBuilder struct {
	builder

	limit      *int
	domainID   string
	smtpUserID string
	name       string
	enabled    *bool
}

// NewSMTPUsersBuilder creates an SMTP users builder.
func NewSMTPUsersBuilder() *SMTPUsersBuilder {
	return &SMTPUsersBuilder{}
}

// Limit sets the page size.
func (b *SMTPUsersBuilder) Limit(limit int) *SMTPUsersBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DomainID sets the owning domain.
func (b *SMTPUsersBuilder) DomainID(domainID string) *SMTPUsersBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = strings.TrimSpace(domainID)
	}

	return b
}

// SMTPUserID addresses an existing SMTP user.
func (b *SMTPUsersBuilder) SMTPUserID(smtpUserID string) *SMTPUsersBuilder {
	if b.checkNotEmpty("smtp_user_id", smtpUserID) {
		b.smtpUserID = strings.TrimSpace(smtpUserID)
	}

	return b
}

// Name sets the SMTP user name.
func (b *SMTPUsersBuilder) Name(name string) *SMTPUsersBuilder {
	name = strings.TrimSpace(name)
	if b.checkNotEmpty("name", name) && b.check("name", name, "max=50", "cannot exceed 50 characters") {
		b.name = name
	}

	return b
}

// Enabled toggles the SMTP user.
func (b *SMTPUsersBuilder) Enabled(enabled bool) *SMTPUsersBuilder {
	if !b.failed() {
		b.enabled = boolPtr(enabled)
	}

	return b
}

// BuildList returns the list request.
func (b *SMTPUsersBuilder) BuildList() (*SMTPUserListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	query := url.Values{}
	pagination{limit: b.limit}.encode(query)

	return &SMTPUserListRequest{listQuery: listQuery{query: query}, domainID: b.domainID}, nil
}

// BuildGet returns the request for one SMTP user. Delete accepts it too.
func (b *SMTPUsersBuilder) BuildGet() (*SMTPUserRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("domain_id", b.domainID, "smtp_user_id", b.smtpUserID); err != nil {
		return nil, err
	}

	return &SMTPUserRequest{domainID: b.domainID, smtpUserID: b.smtpUserID}, nil
}

// BuildCreate returns the create request. Domain ID and name are required.
func (b *SMTPUsersBuilder) BuildCreate() (*SMTPUserCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("domain_id", b.domainID, "name", b.name); err != nil {
		return nil, err
	}

	return &SMTPUserCreateRequest{jsonBody: jsonBody{body: b.body()}, domainID: b.domainID}, nil
}

// BuildUpdate returns the update request. The name is always required.
func (b *SMTPUsersBuilder) BuildUpdate() (*SMTPUserUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if err := requireSet("name", b.name); err != nil {
		return nil, err
	}

	return &SMTPUserUpdateRequest{jsonBody: jsonBody{body: b.body()}, SMTPUserRequest: *target}, nil
}

func (b *SMTPUsersBuilder) body() map[string]any {
	body := map[string]any{"name": b.name}
	if b.enabled != nil {
		body["enabled"] = *b.enabled
	}

	return body
}
