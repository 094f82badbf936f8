package mailersend

import (
	"net/url"
	"strconv"
	"time"
)

// Activity event types.
const (
	EventQueued          = "queued"
	EventSent            = "sent"
	EventDelivered       = "delivered"
	EventSoftBounced     = "soft_bounced"
	EventHardBounced     = "hard_bounced"
	EventOpened          = "opened"
	EventClicked         = "clicked"
	EventUnsubscribed    = "unsubscribed"
	EventSpamComplaints  = "spam_complaints"
	EventSurveyOpened    = "survey_opened"
	EventSurveySubmitted = "survey_submitted"
	EventOpenedUnique    = "opened_unique"
	EventClickedUnique   = "clicked_unique"
)

// ActivityEvents lists the events accepted by the activity endpoint.
var ActivityEvents = []string{
	EventQueued, EventSent, EventDelivered, EventSoftBounced, EventHardBounced,
	EventOpened, EventClicked, EventUnsubscribed, EventSpamComplaints,
	EventSurveyOpened, EventSurveySubmitted,
}

// MaxActivityWindow is the widest date range the activity endpoint accepts.
const MaxActivityWindow = 7 * 24 * time.Hour

// ActivityListRequest lists the activity of one domain.
type ActivityListRequest struct {
	listQuery

	domainID string
}

// DomainID returns the domain whose activity is listed.
func (r *ActivityListRequest) DomainID() string {
	return r.domainID
}

// ActivityRequest identifies one activity record.
type ActivityRequest struct {
	activityID string
}

// ActivityID returns the activity identifier.
func (r *ActivityRequest) ActivityID() string {
	return r.activityID
}

// ActivityBuilder assembles activity requests.
type ActivityBuilder struct {
	builder
	pagination

	domainID   string
	activityID string
	dateFrom   int64
	dateTo     int64
	events     []string
}

// NewActivityBuilder creates an activity builder.
func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{}
}

// DomainID sets the domain to query.
func (b *ActivityBuilder) DomainID(domainID string) *ActivityBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// ActivityID sets the activity to fetch.
func (b *ActivityBuilder) ActivityID(activityID string) *ActivityBuilder {
	if b.checkNotEmpty("activity_id", activityID) {
		b.activityID = activityID
	}

	return b
}

// Page sets the page number.
func (b *ActivityBuilder) Page(page int) *ActivityBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *ActivityBuilder) Limit(limit int) *ActivityBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DateFrom sets the start of the window.
func (b *ActivityBuilder) DateFrom(t time.Time) *ActivityBuilder {
	ts := unixTime(t)
	if b.checkTimestamp("date_from", ts) {
		b.dateFrom = ts
	}

	return b
}

// DateTo sets the end of the window.
func (b *ActivityBuilder) DateTo(t time.Time) *ActivityBuilder {
	ts := unixTime(t)
	if b.checkTimestamp("date_to", ts) {
		b.dateTo = ts
	}

	return b
}

// Event adds event filters.
func (b *ActivityBuilder) Event(events ...string) *ActivityBuilder {
	for _, event := range events {
		if !b.checkOneOf("event", event, ActivityEvents) {
			return b
		}

		if !containsString(b.events, event) {
			b.events = append(b.events, event)
		}
	}

	return b
}

// BuildList returns the list request. date_from and date_to are required,
// date_to must be after date_from and the window is at most seven days.
// The activity ID is ignored.
func (b *ActivityBuilder) BuildList() (*ActivityListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("domain_id", b.domainID); err != nil {
		return nil, err
	}

	if b.dateFrom == 0 {
		return nil, &ValidationError{Field: "date_from", Reason: "is required"}
	}

	if b.dateTo == 0 {
		return nil, &ValidationError{Field: "date_to", Reason: "is required"}
	}

	if b.dateTo <= b.dateFrom {
		return nil, &ValidationError{Field: "date_to", Value: b.dateTo, Reason: "must be after date_from"}
	}

	if time.Duration(b.dateTo-b.dateFrom)*time.Second > MaxActivityWindow {
		return nil, &ValidationError{Field: "date_to", Value: b.dateTo, Reason: "date range cannot exceed 7 days"}
	}

	query := url.Values{}
	b.encode(query)
	query.Set("date_from", formatInt64(b.dateFrom))
	query.Set("date_to", formatInt64(b.dateTo))

	for i, event := range b.events {
		query.Set("event["+strconv.Itoa(i)+"]", event)
	}

	return &ActivityListRequest{listQuery: listQuery{query: query}, domainID: b.domainID}, nil
}

// BuildGet returns the single activity request. Only the activity ID is used.
func (b *ActivityBuilder) BuildGet() (*ActivityRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("activity_id", b.activityID); err != nil {
		return nil, err
	}

	return &ActivityRequest{activityID: b.activityID}, nil
}
