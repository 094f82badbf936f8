package mailersend

import (
	"net/url"
	"strings"
)

// UserListRequest lists account users.
type UserListRequest struct {
	listQuery
}

// InviteListRequest lists pending invites.
type InviteListRequest struct {
	listQuery
}

// UserRequest identifies one account user.
type UserRequest struct {
	userID string
}

// UserID returns the user identifier.
func (r *UserRequest) UserID() string {
	return r.userID
}

// InviteRequest identifies one pending invite.
type InviteRequest struct {
	inviteID string
}

// InviteID returns the invite identifier.
func (r *InviteRequest) InviteID() string {
	return r.inviteID
}

// UserInviteRequest invites a user to the account.
type UserInviteRequest struct {
	jsonBody
}

// UserUpdateRequest changes the role and access of a user.
type UserUpdateRequest struct {
	jsonBody
	UserRequest
}

// UsersBuilder assembles account user and invite requests.
type UsersBuilder struct {
	builder
	pagination

	userID      string
	inviteID    string
	email       string
	role        string
	permissions []string
	templates   []string
	domains     []string
	periodicPwd *bool
}

// NewUsersBuilder creates an account users builder.
func NewUsersBuilder() *UsersBuilder {
	return &UsersBuilder{}
}

// Page sets the page number.
func (b *UsersBuilder) Page(page int) *UsersBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *UsersBuilder) Limit(limit int) *UsersBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// UserID addresses an existing user.
func (b *UsersBuilder) UserID(userID string) *UsersBuilder {
	if b.checkNotEmpty("user_id", userID) {
		b.userID = strings.TrimSpace(userID)
	}

	return b
}

// InviteID addresses a pending invite.
func (b *UsersBuilder) InviteID(inviteID string) *UsersBuilder {
	if b.checkNotEmpty("invite_id", inviteID) {
		b.inviteID = strings.TrimSpace(inviteID)
	}

	return b
}

// Email sets the address to invite.
func (b *UsersBuilder) Email(email string) *UsersBuilder {
	email = strings.TrimSpace(email)
	if b.checkEmail("email", email) && b.check("email", email, "max=191", "cannot exceed 191 characters") {
		b.email = email
	}

	return b
}

// Role sets the account role, for example "Admin" or "Custom User".
func (b *UsersBuilder) Role(role string) *UsersBuilder {
	role = strings.TrimSpace(role)
	if b.checkNotEmpty("role", role) {
		b.role = role
	}

	return b
}

// Permission grants permissions to a custom role.
func (b *UsersBuilder) Permission(permissions ...string) *UsersBuilder {
	b.permissions = b.appendIDs("permissions", b.permissions, permissions)

	return b
}

// Template restricts access to the given templates.
func (b *UsersBuilder) Template(templateIDs ...string) *UsersBuilder {
	b.templates = b.appendIDs("templates", b.templates, templateIDs)

	return b
}

// Domain restricts access to the given domains.
func (b *UsersBuilder) Domain(domainIDs ...string) *UsersBuilder {
	b.domains = b.appendIDs("domains", b.domains, domainIDs)

	return b
}

// RequirePeriodicPasswordChange toggles forced password rotation.
func (b *UsersBuilder) RequirePeriodicPasswordChange(required bool) *UsersBuilder {
	if !b.failed() {
		b.periodicPwd = boolPtr(required)
	}

	return b
}

func (b *UsersBuilder) appendIDs(field string, list, values []string) []string {
	for _, value := range values {
		if !b.checkNotEmpty(field, value) {
			return list
		}

		if !containsString(list, value) {
			list = append(list, value)
		}
	}

	return list
}

// BuildList returns the users list request.
func (b *UsersBuilder) BuildList() (*UserListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &UserListRequest{listQuery{query: query}}, nil
}

// BuildListInvites returns the pending invites list request.
func (b *UsersBuilder) BuildListInvites() (*InviteListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &InviteListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one user. Delete accepts it too.
func (b *UsersBuilder) BuildGet() (*UserRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("user_id", b.userID); err != nil {
		return nil, err
	}

	return &UserRequest{userID: b.userID}, nil
}

// BuildInvite returns the invite request. Email and role are required.
func (b *UsersBuilder) BuildInvite() (*UserInviteRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("email", b.email, "role", b.role); err != nil {
		return nil, err
	}

	body := b.access()
	body["email"] = b.email

	return &UserInviteRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdate returns the update request. The role is always required.
func (b *UsersBuilder) BuildUpdate() (*UserUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if err := requireSet("role", b.role); err != nil {
		return nil, err
	}

	return &UserUpdateRequest{jsonBody: jsonBody{body: b.access()}, UserRequest: *target}, nil
}

// BuildInviteTarget returns the request for one pending invite. Resend and
// cancel accept it too.
func (b *UsersBuilder) BuildInviteTarget() (*InviteRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("invite_id", b.inviteID); err != nil {
		return nil, err
	}

	return &InviteRequest{inviteID: b.inviteID}, nil
}

func (b *UsersBuilder) access() map[string]any {
	body := map[string]any{
		"role":        b.role,
		"permissions": stringsToAny(b.permissions),
		"templates":   stringsToAny(b.templates),
		"domains":     stringsToAny(b.domains),
	}

	if b.periodicPwd != nil {
		body["requires_periodic_password_change"] = *b.periodicPwd
	}

	return body
}
