package mailersend

import (
	"net/url"
	"strings"
)

// MaxTokenName bounds API token names.
const MaxTokenName = 50

// Token statuses accepted by UpdateStatus.
const (
	TokenStatusPause   = "pause"
	TokenStatusUnpause = "unpause"
)

// TokenScopes lists every scope a token can be granted.
var TokenScopes = []string{
	"email_full",
	"domains_read",
	"domains_full",
	"activity_read",
	"activity_full",
	"analytics_read",
	"analytics_full",
	"tokens_full",
	"webhooks_full",
	"templates_full",
	"suppressions_read",
	"suppressions_full",
	"sms_full",
	"sms_read",
	"email_verification_read",
	"email_verification_full",
	"inbounds_full",
	"recipients_read",
	"recipients_full",
	"sender_identity_read",
	"sender_identity_full",
	"users_read",
	"users_full",
	"smtp_users_read",
	"smtp_users_full",
}

var tokenStatuses = []string{TokenStatusPause, TokenStatusUnpause}

// TokenListRequest lists API tokens.
type TokenListRequest struct {
	listQuery
}

// TokenRequest identifies one token.
type TokenRequest struct {
	tokenID string
}

// TokenID returns the token identifier.
func (r *TokenRequest) TokenID() string {
	return r.tokenID
}

// TokenCreateRequest creates a token.
type TokenCreateRequest struct {
	jsonBody
}

// TokenStatusRequest pauses or unpauses a token.
type TokenStatusRequest struct {
	jsonBody
	TokenRequest
}

// TokenRenameRequest renames a token.
type TokenRenameRequest struct {
	jsonBody
	TokenRequest
}

// TokensBuilder assembles API token requests.
type TokensBuilder struct {
	builder
	pagination

	tokenID  string
	name     string
	domainID string
	scopes   []string
	status   string
}

// NewTokensBuilder creates an API tokens builder.
func NewTokensBuilder() *TokensBuilder {
	return &TokensBuilder{}
}

// Page sets the page number.
func (b *TokensBuilder) Page(page int) *TokensBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *TokensBuilder) Limit(limit int) *TokensBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// TokenID addresses an existing token.
func (b *TokensBuilder) TokenID(tokenID string) *TokensBuilder {
	if b.checkNotEmpty("token_id", tokenID) {
		b.tokenID = tokenID
	}

	return b
}

// Name sets the token name. Surrounding whitespace is trimmed.
func (b *TokensBuilder) Name(name string) *TokensBuilder {
	name = strings.TrimSpace(name)
	if b.checkNotEmpty("name", name) && b.check("name", name, "max=50", "cannot exceed 50 characters") {
		b.name = name
	}

	return b
}

// DomainID sets the domain the token is bound to.
func (b *TokensBuilder) DomainID(domainID string) *TokensBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = strings.TrimSpace(domainID)
	}

	return b
}

// Scope grants scopes. Duplicates are dropped.
func (b *TokensBuilder) Scope(scopes ...string) *TokensBuilder {
	for _, scope := range scopes {
		if !b.checkOneOf("scopes", scope, TokenScopes) {
			return b
		}

		if !containsString(b.scopes, scope) {
			b.scopes = append(b.scopes, scope)
		}
	}

	return b
}

// FullAccess grants every scope.
func (b *TokensBuilder) FullAccess() *TokensBuilder {
	return b.Scope(TokenScopes...)
}

// Status sets the new token status, pause or unpause.
func (b *TokensBuilder) Status(status string) *TokensBuilder {
	if b.checkOneOf("status", status, tokenStatuses) {
		b.status = status
	}

	return b
}

// BuildList returns the list request.
func (b *TokensBuilder) BuildList() (*TokenListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &TokenListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one token. Delete accepts it too.
func (b *TokensBuilder) BuildGet() (*TokenRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("token_id", b.tokenID); err != nil {
		return nil, err
	}

	return &TokenRequest{tokenID: b.tokenID}, nil
}

// BuildCreate returns the create request. Name, domain ID and at least one
// scope are required.
func (b *TokensBuilder) BuildCreate() (*TokenCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("name", b.name, "domain_id", b.domainID); err != nil {
		return nil, err
	}

	if len(b.scopes) == 0 {
		return nil, &ValidationError{Field: "scopes", Reason: "at least one scope is required"}
	}

	body := map[string]any{
		"name":      b.name,
		"domain_id": b.domainID,
		"scopes":    stringsToAny(b.scopes),
	}

	return &TokenCreateRequest{jsonBody: jsonBody{body: body}}, nil
}

// BuildUpdateStatus returns the request pausing or unpausing a token.
func (b *TokensBuilder) BuildUpdateStatus() (*TokenStatusRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if err := requireSet("status", b.status); err != nil {
		return nil, err
	}

	return &TokenStatusRequest{jsonBody: jsonBody{body: map[string]any{"status": b.status}}, TokenRequest: *target}, nil
}

// BuildRename returns the request renaming a token.
func (b *TokensBuilder) BuildRename() (*TokenRenameRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if err := requireSet("name", b.name); err != nil {
		return nil, err
	}

	return &TokenRenameRequest{jsonBody: jsonBody{body: map[string]any{"name": b.name}}, TokenRequest: *target}, nil
}
