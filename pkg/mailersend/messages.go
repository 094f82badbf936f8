package mailersend

import "net/url"

// Scheduled message statuses.
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusSent      = "sent"
	ScheduleStatusError     = "error"
)

var scheduleStatuses = []string{ScheduleStatusScheduled, ScheduleStatusSent, ScheduleStatusError}

// MessageListRequest lists sent messages.
type MessageListRequest struct {
	listQuery
}

// ScheduleListRequest lists scheduled messages.
type ScheduleListRequest struct {
	listQuery
}

// MessageRequest identifies one sent or scheduled message.
type MessageRequest struct {
	messageID string
}

// MessageID returns the message identifier.
func (r *MessageRequest) MessageID() string {
	return r.messageID
}

// MessagesBuilder assembles requests for sent messages.
type MessagesBuilder struct {
	builder
	pagination

	messageID string
}

// NewMessagesBuilder creates a messages builder.
func NewMessagesBuilder() *MessagesBuilder {
	return &MessagesBuilder{}
}

// Page sets the page number.
func (b *MessagesBuilder) Page(page int) *MessagesBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *MessagesBuilder) Limit(limit int) *MessagesBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// MessageID sets the message to fetch.
func (b *MessagesBuilder) MessageID(messageID string) *MessagesBuilder {
	if b.checkNotEmpty("message_id", messageID) {
		b.messageID = messageID
	}

	return b
}

// BuildList returns the list request. The message ID is ignored.
func (b *MessagesBuilder) BuildList() (*MessageListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	return &MessageListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one message.
func (b *MessagesBuilder) BuildGet() (*MessageRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("message_id", b.messageID); err != nil {
		return nil, err
	}

	return &MessageRequest{messageID: b.messageID}, nil
}

// SchedulesBuilder assembles requests for scheduled messages.
type SchedulesBuilder struct {
	builder
	pagination

	domainID  string
	status    string
	messageID string
}

// NewSchedulesBuilder creates a scheduled messages builder.
func NewSchedulesBuilder() *SchedulesBuilder {
	return &SchedulesBuilder{}
}

// Page sets the page number.
func (b *SchedulesBuilder) Page(page int) *SchedulesBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *SchedulesBuilder) Limit(limit int) *SchedulesBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DomainID filters by domain.
func (b *SchedulesBuilder) DomainID(domainID string) *SchedulesBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// Status filters by schedule status.
func (b *SchedulesBuilder) Status(status string) *SchedulesBuilder {
	if b.checkOneOf("status", status, scheduleStatuses) {
		b.status = status
	}

	return b
}

// MessageID sets the scheduled message to fetch or delete.
func (b *SchedulesBuilder) MessageID(messageID string) *SchedulesBuilder {
	if b.checkNotEmpty("message_id", messageID) {
		b.messageID = messageID
	}

	return b
}

// BuildList returns the list request. The message ID is ignored.
func (b *SchedulesBuilder) BuildList() (*ScheduleListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	if b.status != "" {
		query.Set("status", b.status)
	}

	return &ScheduleListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one scheduled message. Delete accepts it
// too.
func (b *SchedulesBuilder) BuildGet() (*MessageRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("message_id", b.messageID); err != nil {
		return nil, err
	}

	return &MessageRequest{messageID: b.messageID}, nil
}
