package mailersend

import (
	"net/url"
	"strings"
	"time"
)

// SMS delivery statuses.
const (
	SMSStatusProcessed = "processed"
	SMSStatusQueued    = "queued"
	SMSStatusSent      = "sent"
	SMSStatusDelivered = "delivered"
	SMSStatusFailed    = "failed"
)

// SMSStatuses lists every SMS activity status.
var SMSStatuses = []string{SMSStatusProcessed, SMSStatusQueued, SMSStatusSent, SMSStatusDelivered, SMSStatusFailed}

// SMSActivityListRequest lists SMS activity.
type SMSActivityListRequest struct {
	listQuery
}

// SMSMessageListRequest lists SMS messages.
type SMSMessageListRequest struct {
	listQuery
}

// SMSMessageRequest identifies one SMS message.
type SMSMessageRequest struct {
	messageID string
}

// MessageID returns the SMS message identifier.
func (r *SMSMessageRequest) MessageID() string {
	return r.messageID
}

// SMSActivityBuilder assembles SMS activity and SMS message requests.
type SMSActivityBuilder struct {
	builder
	pagination

	smsNumberID string
	messageID   string
	dateFrom    int64
	dateTo      int64
	statuses    []string
}

// NewSMSActivityBuilder creates an SMS activity builder.
func NewSMSActivityBuilder() *SMSActivityBuilder {
	return &SMSActivityBuilder{}
}

// Page sets the page number.
func (b *SMSActivityBuilder) Page(page int) *SMSActivityBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *SMSActivityBuilder) Limit(limit int) *SMSActivityBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// SMSNumberID filters activity by sending number.
func (b *SMSActivityBuilder) SMSNumberID(id string) *SMSActivityBuilder {
	if b.checkNotEmpty("sms_number_id", id) {
		b.smsNumberID = strings.TrimSpace(id)
	}

	return b
}

// MessageID addresses one SMS message.
func (b *SMSActivityBuilder) MessageID(id string) *SMSActivityBuilder {
	if b.checkNotEmpty("sms_message_id", id) {
		b.messageID = strings.TrimSpace(id)
	}

	return b
}

// DateFrom sets the start of the window.
func (b *SMSActivityBuilder) DateFrom(t time.Time) *SMSActivityBuilder {
	if ts := unixTime(t); b.checkTimestamp("date_from", ts) {
		b.dateFrom = ts
	}

	return b
}

// DateTo sets the end of the window.
func (b *SMSActivityBuilder) DateTo(t time.Time) *SMSActivityBuilder {
	if ts := unixTime(t); b.checkTimestamp("date_to", ts) {
		b.dateTo = ts
	}

	return b
}

// Status filters by delivery status.
func (b *SMSActivityBuilder) Status(statuses ...string) *SMSActivityBuilder {
	for _, status := range statuses {
		if !b.checkOneOf("status", status, SMSStatuses) {
			return b
		}

		if !containsString(b.statuses, status) {
			b.statuses = append(b.statuses, status)
		}
	}

	return b
}

// BuildList returns the activity list request. Dates are optional, but when
// both are set the end must follow the start.
func (b *SMSActivityBuilder) BuildList() (*SMSActivityListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.dateFrom != 0 && b.dateTo != 0 && b.dateTo <= b.dateFrom {
		return nil, &ValidationError{Field: "date_to", Value: b.dateTo, Reason: "must be after date_from"}
	}

	query := url.Values{}
	b.encode(query)

	if b.smsNumberID != "" {
		query.Set("sms_number_id", b.smsNumberID)
	}

	if b.dateFrom != 0 {
		query.Set("date_from", formatInt64(b.dateFrom))
	}

	if b.dateTo != 0 {
		query.Set("date_to", formatInt64(b.dateTo))
	}

	for _, status := range b.statuses {
		query.Add("status[]", status)
	}

	return &SMSActivityListRequest{listQuery{query: query}}, nil
}

// BuildMessages returns the SMS messages list request. Only page and limit
// are used.
func (b *SMSActivityBuilder) BuildMessages() (*SMSMessageListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &SMSMessageListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one SMS message.
func (b *SMSActivityBuilder) BuildGet() (*SMSMessageRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("sms_message_id", b.messageID); err != nil {
		return nil, err
	}

	return &SMSMessageRequest{messageID: b.messageID}, nil
}
