package mailersend

import (
	"net/url"
	"strings"
)

// Verification results.
const (
	VerificationValid           = "valid"
	VerificationCatchAll        = "catch_all"
	VerificationMailboxFull     = "mailbox_full"
	VerificationRoleBased       = "role_based"
	VerificationUnknown         = "unknown"
	VerificationFailed          = "failed"
	VerificationSyntaxError     = "syntax_error"
	VerificationTypo            = "typo"
	VerificationMailboxNotFound = "mailbox_not_found"
	VerificationDisposable      = "disposable"
	VerificationMailboxBlocked  = "mailbox_blocked"
)

// VerificationResults lists every result a verified address can have.
var VerificationResults = []string{
	VerificationValid, VerificationCatchAll, VerificationMailboxFull, VerificationRoleBased,
	VerificationUnknown, VerificationFailed, VerificationSyntaxError, VerificationTypo,
	VerificationMailboxNotFound, VerificationDisposable, VerificationMailboxBlocked,
}

// VerifyEmailRequest verifies a single address synchronously.
type VerifyEmailRequest struct {
	jsonBody
}

// VerifyEmailAsyncRequest queues verification of a single address.
type VerifyEmailAsyncRequest struct {
	jsonBody
}

// VerifyAsyncStatusRequest identifies one queued single-address
// verification.
type VerifyAsyncStatusRequest struct {
	verificationID string
}

// VerificationID returns the queued verification identifier.
func (r *VerifyAsyncStatusRequest) VerificationID() string {
	return r.verificationID
}

// VerificationListRequest lists verification lists.
type VerificationListRequest struct {
	listQuery
}

// VerificationResultsRequest pages through the results of one list.
type VerificationResultsRequest struct {
	listQuery

	verificationID string
}

// VerificationID returns the list whose results are requested.
func (r *VerificationResultsRequest) VerificationID() string {
	return r.verificationID
}

// VerificationRequest identifies a verification list or an async single
// verification.
type VerificationRequest struct {
	verificationID string
}

// VerificationID returns the identifier.
func (r *VerificationRequest) VerificationID() string {
	return r.verificationID
}

// VerificationCreateRequest creates a verification list.
type VerificationCreateRequest struct {
	jsonBody
}

// EmailVerificationBuilder assembles email verification requests.
type EmailVerificationBuilder struct {
	builder
	pagination

	verificationID string
	email          string
	name           string
	emails         []string
	results        []string
}

// NewEmailVerificationBuilder creates an email verification builder.
func NewEmailVerificationBuilder() *EmailVerificationBuilder {
	return &EmailVerificationBuilder{}
}

// Page sets the page number.
func (b *EmailVerificationBuilder) Page(page int) *EmailVerificationBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *EmailVerificationBuilder) Limit(limit int) *EmailVerificationBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// VerificationID addresses a verification list or async verification.
func (b *EmailVerificationBuilder) VerificationID(id string) *EmailVerificationBuilder {
	if b.checkNotEmpty("email_verification_id", id) {
		b.verificationID = strings.TrimSpace(id)
	}

	return b
}

// Email sets the single address to verify.
func (b *EmailVerificationBuilder) Email(email string) *EmailVerificationBuilder {
	email = strings.TrimSpace(email)
	if b.checkNotEmpty("email", email) {
		b.email = email
	}

	return b
}

// Name sets the verification list name.
func (b *EmailVerificationBuilder) Name(name string) *EmailVerificationBuilder {
	name = strings.TrimSpace(name)
	if b.checkNotEmpty("name", name) {
		b.name = name
	}

	return b
}

// AddEmails appends addresses to the list being created. Addresses are not
// syntax checked; the point of the list is to find the invalid ones.
func (b *EmailVerificationBuilder) AddEmails(emails ...string) *EmailVerificationBuilder {
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if !b.checkNotEmpty("emails", email) ||
			!b.check("emails", email, "max=191", "cannot exceed 191 characters") {
			return b
		}

		b.emails = append(b.emails, email)
	}

	return b
}

// Results filters list results by verification result.
func (b *EmailVerificationBuilder) Results(results ...string) *EmailVerificationBuilder {
	for _, result := range results {
		if !b.checkOneOf("results", result, VerificationResults) {
			return b
		}

		if !containsString(b.results, result) {
			b.results = append(b.results, result)
		}
	}

	return b
}

// BuildVerify returns the synchronous single address request.
func (b *EmailVerificationBuilder) BuildVerify() (*VerifyEmailRequest, error) {
	body, err := b.singleAddress()
	if err != nil {
		return nil, err
	}

	return &VerifyEmailRequest{body}, nil
}

// BuildVerifyAsync returns the queued single address request.
func (b *EmailVerificationBuilder) BuildVerifyAsync() (*VerifyEmailAsyncRequest, error) {
	body, err := b.singleAddress()
	if err != nil {
		return nil, err
	}

	return &VerifyEmailAsyncRequest{body}, nil
}

func (b *EmailVerificationBuilder) singleAddress() (jsonBody, error) {
	if b.err != nil {
		return jsonBody{}, b.err
	}

	if err := requireSet("email", b.email); err != nil {
		return jsonBody{}, err
	}

	return jsonBody{body: map[string]any{"email": b.email}}, nil
}

// BuildAsyncStatus returns the request polling a queued single-address
// verification.
func (b *EmailVerificationBuilder) BuildAsyncStatus() (*VerifyAsyncStatusRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	return &VerifyAsyncStatusRequest{verificationID: target.verificationID}, nil
}

// BuildGet returns a request addressing one verification list. Get and
// VerifyList accept it.
func (b *EmailVerificationBuilder) BuildGet() (*VerificationRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("email_verification_id", b.verificationID); err != nil {
		return nil, err
	}

	return &VerificationRequest{verificationID: b.verificationID}, nil
}

// BuildList returns the request listing verification lists.
func (b *EmailVerificationBuilder) BuildList() (*VerificationListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &VerificationListRequest{listQuery: listQuery{query: query}}, nil
}

// BuildResults returns the request paging through one list's results.
func (b *EmailVerificationBuilder) BuildResults() (*VerificationResultsRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	b.encode(query)

	for _, result := range b.results {
		query.Add("results", result)
	}

	return &VerificationResultsRequest{listQuery: listQuery{query: query}, verificationID: target.verificationID}, nil
}

// BuildCreate returns the request creating a verification list. Name and at
// least one address are required.
func (b *EmailVerificationBuilder) BuildCreate() (*VerificationCreateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("name", b.name); err != nil {
		return nil, err
	}

	if len(b.emails) == 0 {
		return nil, &ValidationError{Field: "emails", Reason: "at least one email address is required"}
	}

	body := map[string]any{"name": b.name, "emails": stringsToAny(b.emails)}

	return &VerificationCreateRequest{jsonBody{body: body}}, nil
}
