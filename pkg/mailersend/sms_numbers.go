package mailersend

import (
	"net/url"
	"strings"
)

// SMS recipient statuses.
const (
	SMSRecipientActive = "active"
	SMSRecipientOptOut = "opt_out"
)

var smsRecipientStatuses = []string{SMSRecipientActive, SMSRecipientOptOut}

// SMSNumberRequest identifies one SMS phone number.
type SMSNumberRequest struct {
	numberID string
}

// NumberID returns the SMS number identifier.
func (r *SMSNumberRequest) NumberID() string {
	return r.numberID
}

// SMSNumberListRequest lists SMS phone numbers.
type SMSNumberListRequest struct {
	listQuery
}

// SMSRecipientListRequest lists SMS recipients.
type SMSRecipientListRequest struct {
	listQuery
}

// SMSNumberUpdateRequest pauses or resumes an SMS number.
type SMSNumberUpdateRequest struct {
	jsonBody
	SMSNumberRequest
}

// SMSNumbersBuilder assembles SMS phone number requests.
type SMSNumbersBuilder struct {
	builder
	pagination

	numberID string
	paused   *bool
}

// NewSMSNumbersBuilder creates an SMS numbers builder.
func NewSMSNumbersBuilder() *SMSNumbersBuilder {
	return &SMSNumbersBuilder{}
}

// Page sets the page number.
func (b *SMSNumbersBuilder) Page(page int) *SMSNumbersBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *SMSNumbersBuilder) Limit(limit int) *SMSNumbersBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// NumberID addresses one number.
func (b *SMSNumbersBuilder) NumberID(id string) *SMSNumbersBuilder {
	if b.checkNotEmpty("sms_number_id", id) {
		b.numberID = strings.TrimSpace(id)
	}

	return b
}

// Paused filters the list, or sets the paused state on update.
func (b *SMSNumbersBuilder) Paused(paused bool) *SMSNumbersBuilder {
	if !b.failed() {
		b.paused = boolPtr(paused)
	}

	return b
}

// BuildList returns the list request.
func (b *SMSNumbersBuilder) BuildList() (*SMSNumberListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.paused != nil {
		query.Set("paused", formatBool(*b.paused))
	}

	return &SMSNumberListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one number. Delete accepts it too.
func (b *SMSNumbersBuilder) BuildGet() (*SMSNumberRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_number_id", b.numberID); err != nil {
		return nil, err
	}

	return &SMSNumberRequest{numberID: b.numberID}, nil
}

// BuildUpdate returns the update request. Paused is required.
func (b *SMSNumbersBuilder) BuildUpdate() (*SMSNumberUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if b.paused == nil {
		return nil, &ValidationError{Field: "paused", Reason: "is required"}
	}

	return &SMSNumberUpdateRequest{
		jsonBody:         jsonBody{body: map[string]any{"paused": *b.paused}},
		SMSNumberRequest: *target,
	}, nil
}

// SMSRecipientRequest identifies one SMS recipient.
type SMSRecipientRequest struct {
	recipientID string
}

// RecipientID returns the SMS recipient identifier.
func (r *SMSRecipientRequest) RecipientID() string {
	return r.recipientID
}

// SMSRecipientUpdateRequest changes the status of an SMS recipient.
type SMSRecipientUpdateRequest struct {
	jsonBody
	SMSRecipientRequest
}

// SMSRecipientsBuilder assembles SMS recipient requests.
type SMSRecipientsBuilder struct {
	builder
	pagination

	recipientID string
	numberID    string
	status      string
}

// NewSMSRecipientsBuilder creates an SMS recipients builder.
func NewSMSRecipientsBuilder() *SMSRecipientsBuilder {
	return &SMSRecipientsBuilder{}
}

// Page sets the page number.
func (b *SMSRecipientsBuilder) Page(page int) *SMSRecipientsBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *SMSRecipientsBuilder) Limit(limit int) *SMSRecipientsBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// RecipientID addresses one recipient.
func (b *SMSRecipientsBuilder) RecipientID(id string) *SMSRecipientsBuilder {
	if b.checkNotEmpty("sms_recipient_id", id) {
		b.recipientID = strings.TrimSpace(id)
	}

	return b
}

// SMSNumberID filters the list by sending number.
func (b *SMSRecipientsBuilder) SMSNumberID(id string) *SMSRecipientsBuilder {
	if b.checkNotEmpty("sms_number_id", id) {
		b.numberID = strings.TrimSpace(id)
	}

	return b
}

// Status filters the list, or sets the new status on update.
func (b *SMSRecipientsBuilder) Status(status string) *SMSRecipientsBuilder {
	if b.checkOneOf("status", status, smsRecipientStatuses) {
		b.status = status
	}

	return b
}

// BuildList returns the list request.
func (b *SMSRecipientsBuilder) BuildList() (*SMSRecipientListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.status != "" {
		query.Set("status", b.status)
	}

	if b.numberID != "" {
		query.Set("sms_number_id", b.numberID)
	}

	return &SMSRecipientListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one recipient.
func (b *SMSRecipientsBuilder) BuildGet() (*SMSRecipientRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_recipient_id", b.recipientID); err != nil {
		return nil, err
	}

	return &SMSRecipientRequest{recipientID: b.recipientID}, nil
}

// BuildUpdate returns the status update request.
func (b *SMSRecipientsBuilder) BuildUpdate() (*SMSRecipientUpdateRequest, error) {
	target, err := b.BuildGet()
	if err != nil {
		return nil, err
	}

	if err := requireSet("status", b.status); err != nil {
		return nil, err
	}

	return &SMSRecipientUpdateRequest{
		jsonBody:            jsonBody{body: map[string]any{"status": b.status}},
		SMSRecipientRequest: *target,
	}, nil
}
