package mailersend

import (
	"net/url"
	"time"
)

// Analytics grouping.
const (
	GroupByDays   = "days"
	GroupByWeeks  = "weeks"
	GroupByMonths = "months"
	GroupByYears  = "years"
)

// MaxAnalyticsRecipients bounds the recipient_id filter.
const MaxAnalyticsRecipients = 50

// AnalyticsEvents lists the events accepted by analytics/date.
var AnalyticsEvents = []string{
	EventQueued, EventSent, EventDelivered, EventSoftBounced, EventHardBounced,
	EventOpened, EventOpenedUnique, EventClicked, EventClickedUnique,
	EventUnsubscribed, EventSpamComplaints, EventSurveyOpened, EventSurveySubmitted,
}

var groupByValues = []string{GroupByDays, GroupByWeeks, GroupByMonths, GroupByYears}

// AnalyticsDateRequest queries activity counts over time.
type AnalyticsDateRequest struct {
	listQuery
}

// AnalyticsOpensRequest queries one of the opens breakdown reports.
type AnalyticsOpensRequest struct {
	listQuery
}

// AnalyticsBuilder assembles analytics queries.
type AnalyticsBuilder struct {
	builder

	domainID   string
	recipients []string
	dateFrom   int64
	dateTo     int64
	tags       []string
	groupBy    string
	events     []string
}

// NewAnalyticsBuilder creates an analytics builder.
func NewAnalyticsBuilder() *AnalyticsBuilder {
	return &AnalyticsBuilder{}
}

// DomainID restricts the query to one domain.
func (b *AnalyticsBuilder) DomainID(domainID string) *AnalyticsBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// Recipient adds recipient IDs to the filter.
func (b *AnalyticsBuilder) Recipient(recipientIDs ...string) *AnalyticsBuilder {
	for _, id := range recipientIDs {
		if !b.checkNotEmpty("recipient_id", id) {
			return b
		}

		if len(b.recipients) >= MaxAnalyticsRecipients {
			b.fail("recipient_id", id, "maximum 50 recipients are allowed")

			return b
		}

		b.recipients = append(b.recipients, id)
	}

	return b
}

// DateFrom sets the start of the range.
func (b *AnalyticsBuilder) DateFrom(t time.Time) *AnalyticsBuilder {
	ts := unixTime(t)
	if b.checkTimestamp("date_from", ts) {
		b.dateFrom = ts
	}

	return b
}

// DateTo sets the end of the range.
func (b *AnalyticsBuilder) DateTo(t time.Time) *AnalyticsBuilder {
	ts := unixTime(t)
	if b.checkTimestamp("date_to", ts) {
		b.dateTo = ts
	}

	return b
}

// DateRange sets both ends of the range.
func (b *AnalyticsBuilder) DateRange(from, to time.Time) *AnalyticsBuilder {
	return b.DateFrom(from).DateTo(to)
}

// LastDays sets the range to the n days ending now.
func (b *AnalyticsBuilder) LastDays(n int) *AnalyticsBuilder {
	if !b.check("days", n, "min=1", "must be at least 1") {
		return b
	}

	now := time.Now()

	return b.DateRange(now.AddDate(0, 0, -n), now)
}

// Tag adds tag filters.
func (b *AnalyticsBuilder) Tag(tags ...string) *AnalyticsBuilder {
	for _, tag := range tags {
		if !b.checkNotEmpty("tags", tag) {
			return b
		}

		b.tags = append(b.tags, tag)
	}

	return b
}

// GroupBy sets the aggregation period.
func (b *AnalyticsBuilder) GroupBy(groupBy string) *AnalyticsBuilder {
	if b.checkOneOf("group_by", groupBy, groupByValues) {
		b.groupBy = groupBy
	}

	return b
}

// Event adds events to aggregate.
func (b *AnalyticsBuilder) Event(events ...string) *AnalyticsBuilder {
	for _, event := range events {
		if !b.checkOneOf("event", event, AnalyticsEvents) {
			return b
		}

		if !containsString(b.events, event) {
			b.events = append(b.events, event)
		}
	}

	return b
}

func (b *AnalyticsBuilder) baseQuery() (url.Values, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.dateFrom == 0 {
		return nil, &ValidationError{Field: "date_from", Reason: "is required"}
	}

	if b.dateTo == 0 {
		return nil, &ValidationError{Field: "date_to", Reason: "is required"}
	}

	if b.dateFrom >= b.dateTo {
		return nil, &ValidationError{Field: "date_from", Value: b.dateFrom, Reason: "must be before date_to"}
	}

	query := url.Values{}
	query.Set("date_from", formatInt64(b.dateFrom))
	query.Set("date_to", formatInt64(b.dateTo))

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	for _, id := range b.recipients {
		query.Add("recipient_id[]", id)
	}

	for _, tag := range b.tags {
		query.Add("tags[]", tag)
	}

	return query, nil
}

// BuildByDate returns a query for analytics/date. At least one event is
// required.
func (b *AnalyticsBuilder) BuildByDate() (*AnalyticsDateRequest, error) {
	query, err := b.baseQuery()
	if err != nil {
		return nil, err
	}

	if len(b.events) == 0 {
		return nil, &ValidationError{Field: "event", Reason: "at least one event is required"}
	}

	for _, event := range b.events {
		query.Add("event[]", event)
	}

	if b.groupBy != "" {
		query.Set("group_by", b.groupBy)
	}

	return &AnalyticsDateRequest{listQuery: listQuery{query: query}}, nil
}

// BuildOpens returns a query for the opens-by-country, user agent and
// reading environment reports. Events and grouping are ignored.
func (b *AnalyticsBuilder) BuildOpens() (*AnalyticsOpensRequest, error) {
	query, err := b.baseQuery()
	if err != nil {
		return nil, err
	}

	return &AnalyticsOpensRequest{listQuery: listQuery{query: query}}, nil
}
