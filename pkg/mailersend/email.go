package mailersend

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Email sending limits.
const (
	MaxEmailRecipients = 50
	MaxEmailCC         = 10
	MaxEmailBCC        = 10
	MaxEmailTags       = 5
	MaxBulkEmails      = 500
)

// Attachment dispositions.
const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// Recipient is a name/address pair.
type Recipient struct {
	Email string `json:"email"          validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

// Attachment is a base64 encoded file.
type Attachment struct {
	Content     string `json:"content"               validate:"required"`
	Filename    string `json:"filename"              validate:"required"`
	Disposition string `json:"disposition,omitempty" validate:"omitempty,oneof=attachment inline"`
	ID          string `json:"id,omitempty"`
}

// Personalization holds template variables for one recipient.
type Personalization struct {
	Email string         `json:"email" validate:"required,email"`
	Data  map[string]any `json:"data"`
}

// EmailSettings toggles tracking for one message.
type EmailSettings struct {
	TrackClicks  *bool `json:"track_clicks,omitempty"`
	TrackOpens   *bool `json:"track_opens,omitempty"`
	TrackContent *bool `json:"track_content,omitempty"`
}

// EmailHeader is a custom header added to the message.
type EmailHeader struct {
	Name  string `json:"name"  validate:"required"`
	Value string `json:"value" validate:"required"`
}

type emailMessage struct {
	From            *Recipient        `json:"from,omitempty"`
	To              []Recipient       `json:"to"                        validate:"required,min=1,max=50,dive"`
	CC              []Recipient       `json:"cc,omitempty"              validate:"max=10,dive"`
	BCC             []Recipient       `json:"bcc,omitempty"             validate:"max=10,dive"`
	ReplyTo         *Recipient        `json:"reply_to,omitempty"`
	Subject         string            `json:"subject,omitempty"`
	Text            string            `json:"text,omitempty"`
	HTML            string            `json:"html,omitempty"`
	TemplateID      string            `json:"template_id,omitempty"`
	Attachments     []Attachment      `json:"attachments,omitempty"     validate:"dive"`
	Tags            []string          `json:"tags,omitempty"            validate:"max=5"`
	Personalization []Personalization `json:"personalization,omitempty" validate:"dive"`
	PrecedenceBulk  *bool             `json:"precedence_bulk,omitempty"`
	SendAt          int64             `json:"send_at,omitempty"`
	InReplyTo       string            `json:"in_reply_to,omitempty"`
	References      []string          `json:"references,omitempty"`
	Settings        *EmailSettings    `json:"settings,omitempty"`
	Headers         []EmailHeader     `json:"headers,omitempty"         validate:"dive"`
}

// EmailRequest is a built, immutable single email.
type EmailRequest struct {
	message emailMessage
}

// Payload returns the JSON body of the request.
func (r *EmailRequest) Payload() any {
	return r.message.clone()
}

// Recipients returns the addresses in "to".
func (r *EmailRequest) Recipients() []string {
	out := make([]string, 0, len(r.message.To))
	for _, to := range r.message.To {
		out = append(out, to.Email)
	}

	return out
}

// Subject returns the subject line.
func (r *EmailRequest) Subject() string {
	return r.message.Subject
}

func (m emailMessage) clone() emailMessage {
	out := m
	out.To = append([]Recipient(nil), m.To...)
	out.CC = append([]Recipient(nil), m.CC...)
	out.BCC = append([]Recipient(nil), m.BCC...)
	out.Attachments = append([]Attachment(nil), m.Attachments...)
	out.Tags = copyStrings(m.Tags)
	out.References = copyStrings(m.References)
	out.Headers = append([]EmailHeader(nil), m.Headers...)

	out.Personalization = make([]Personalization, len(m.Personalization))
	for i, p := range m.Personalization {
		out.Personalization[i] = Personalization{Email: p.Email, Data: cloneMap(p.Data)}
	}

	if len(out.Personalization) == 0 {
		out.Personalization = nil
	}

	if m.From != nil {
		from := *m.From
		out.From = &from
	}

	if m.ReplyTo != nil {
		replyTo := *m.ReplyTo
		out.ReplyTo = &replyTo
	}

	if m.Settings != nil {
		settings := *m.Settings
		out.Settings = &settings
	}

	return out
}

// EmailBuilder assembles an EmailRequest.
//
// File setters read through an afero filesystem; NewEmailBuilder uses the
// OS filesystem.
type EmailBuilder struct {
	builder

	fs      afero.Fs
	message emailMessage
}

// NewEmailBuilder creates an email builder backed by the OS filesystem.
func NewEmailBuilder() *EmailBuilder {
	return NewEmailBuilderWithFs(afero.NewOsFs())
}

// NewEmailBuilderWithFs creates an email builder that reads files from fs.
func NewEmailBuilderWithFs(fs afero.Fs) *EmailBuilder {
	return &EmailBuilder{fs: fs}
}

// From sets the sender.
func (b *EmailBuilder) From(email, name string) *EmailBuilder {
	if b.checkEmail("from.email", email) {
		b.message.From = &Recipient{Email: email, Name: name}
	}

	return b
}

// To adds a recipient.
func (b *EmailBuilder) To(email, name string) *EmailBuilder {
	if b.checkEmail("to.email", email) {
		if len(b.message.To) >= MaxEmailRecipients {
			b.fail("to", email, fmt.Sprintf("at most %d recipients are allowed", MaxEmailRecipients))

			return b
		}

		b.message.To = append(b.message.To, Recipient{Email: email, Name: name})
	}

	return b
}

// ToMany adds several recipients.
func (b *EmailBuilder) ToMany(recipients []Recipient) *EmailBuilder {
	for _, r := range recipients {
		b.To(r.Email, r.Name)
	}

	return b
}

// CC adds a carbon copy recipient.
func (b *EmailBuilder) CC(email, name string) *EmailBuilder {
	if b.checkEmail("cc.email", email) {
		if len(b.message.CC) >= MaxEmailCC {
			b.fail("cc", email, fmt.Sprintf("at most %d cc recipients are allowed", MaxEmailCC))

			return b
		}

		b.message.CC = append(b.message.CC, Recipient{Email: email, Name: name})
	}

	return b
}

// BCC adds a blind carbon copy recipient.
func (b *EmailBuilder) BCC(email, name string) *EmailBuilder {
	if b.checkEmail("bcc.email", email) {
		if len(b.message.BCC) >= MaxEmailBCC {
			b.fail("bcc", email, fmt.Sprintf("at most %d bcc recipients are allowed", MaxEmailBCC))

			return b
		}

		b.message.BCC = append(b.message.BCC, Recipient{Email: email, Name: name})
	}

	return b
}

// ReplyTo sets the reply-to address.
func (b *EmailBuilder) ReplyTo(email, name string) *EmailBuilder {
	if b.checkEmail("reply_to.email", email) {
		b.message.ReplyTo = &Recipient{Email: email, Name: name}
	}

	return b
}

// Subject sets the subject line.
func (b *EmailBuilder) Subject(subject string) *EmailBuilder {
	if b.checkNotEmpty("subject", subject) {
		b.message.Subject = subject
	}

	return b
}

// HTML sets the HTML body.
func (b *EmailBuilder) HTML(html string) *EmailBuilder {
	if !b.failed() {
		b.message.HTML = html
	}

	return b
}

// Text sets the plain text body.
func (b *EmailBuilder) Text(text string) *EmailBuilder {
	if !b.failed() {
		b.message.Text = text
	}

	return b
}

// HTMLFile reads the HTML body from a file.
func (b *EmailBuilder) HTMLFile(path string) *EmailBuilder {
	content, ok := b.readFile("html", path)
	if ok {
		b.message.HTML = string(content)
	}

	return b
}

// TextFile reads the plain text body from a file.
func (b *EmailBuilder) TextFile(path string) *EmailBuilder {
	content, ok := b.readFile("text", path)
	if ok {
		b.message.Text = string(content)
	}

	return b
}

// Template sends a stored template instead of inline content.
func (b *EmailBuilder) Template(templateID string) *EmailBuilder {
	if b.checkNotEmpty("template_id", templateID) {
		b.message.TemplateID = templateID
	}

	return b
}

// AttachFile reads a file and attaches it under its base name.
func (b *EmailBuilder) AttachFile(path, disposition string) *EmailBuilder {
	content, ok := b.readFile("attachments", path)
	if ok {
		b.AttachContent(content, filepath.Base(path), disposition)
	}

	return b
}

// AttachContent attaches raw bytes. An empty disposition means attachment.
func (b *EmailBuilder) AttachContent(content []byte, filename, disposition string) *EmailBuilder {
	if disposition == "" {
		disposition = DispositionAttachment
	}

	if !b.checkNotEmpty("attachments.filename", filename) ||
		!b.checkOneOf("attachments.disposition", disposition, []string{DispositionAttachment, DispositionInline}) {
		return b
	}

	b.message.Attachments = append(b.message.Attachments, Attachment{
		Content:     base64.StdEncoding.EncodeToString(content),
		Filename:    filename,
		Disposition: disposition,
	})

	return b
}

// Tag adds tags; a message carries at most MaxEmailTags.
func (b *EmailBuilder) Tag(tags ...string) *EmailBuilder {
	for _, tag := range tags {
		if !b.checkNotEmpty("tags", tag) {
			return b
		}

		if len(b.message.Tags) >= MaxEmailTags {
			b.fail("tags", tag, fmt.Sprintf("at most %d tags are allowed", MaxEmailTags))

			return b
		}

		b.message.Tags = append(b.message.Tags, tag)
	}

	return b
}

// Personalize sets template variables for one recipient.
func (b *EmailBuilder) Personalize(email string, data map[string]any) *EmailBuilder {
	if b.checkEmail("personalization.email", email) {
		b.message.Personalization = append(b.message.Personalization, Personalization{
			Email: email,
			Data:  cloneMap(data),
		})
	}

	return b
}

// PrecedenceBulk sets the Precedence: bulk header.
func (b *EmailBuilder) PrecedenceBulk(enabled bool) *EmailBuilder {
	if !b.failed() {
		b.message.PrecedenceBulk = boolPtr(enabled)
	}

	return b
}

// SendAt schedules delivery.
func (b *EmailBuilder) SendAt(at time.Time) *EmailBuilder {
	ts := unixTime(at)
	if b.checkTimestamp("send_at", ts) {
		b.message.SendAt = ts
	}

	return b
}

// SendIn schedules delivery after d.
func (b *EmailBuilder) SendIn(d time.Duration) *EmailBuilder {
	return b.SendAt(time.Now().Add(d))
}

// InReplyTo threads the message under another one.
func (b *EmailBuilder) InReplyTo(messageID string) *EmailBuilder {
	if b.checkNotEmpty("in_reply_to", messageID) {
		b.message.InReplyTo = messageID
	}

	return b
}

// Reference adds message IDs to the References header.
func (b *EmailBuilder) Reference(messageIDs ...string) *EmailBuilder {
	for _, id := range messageIDs {
		if !b.checkNotEmpty("references", id) {
			return b
		}

		b.message.References = append(b.message.References, id)
	}

	return b
}

// Tracking sets click, open and content tracking. Nil leaves the account
// default.
func (b *EmailBuilder) Tracking(clicks, opens, content *bool) *EmailBuilder {
	if !b.failed() {
		b.message.Settings = &EmailSettings{TrackClicks: clicks, TrackOpens: opens, TrackContent: content}
	}

	return b
}

// TrackClicks toggles click tracking.
func (b *EmailBuilder) TrackClicks(enabled bool) *EmailBuilder {
	if !b.failed() {
		b.settings().TrackClicks = boolPtr(enabled)
	}

	return b
}

// TrackOpens toggles open tracking.
func (b *EmailBuilder) TrackOpens(enabled bool) *EmailBuilder {
	if !b.failed() {
		b.settings().TrackOpens = boolPtr(enabled)
	}

	return b
}

// TrackContent toggles content tracking.
func (b *EmailBuilder) TrackContent(enabled bool) *EmailBuilder {
	if !b.failed() {
		b.settings().TrackContent = boolPtr(enabled)
	}

	return b
}

// Header adds a custom header.
func (b *EmailBuilder) Header(name, value string) *EmailBuilder {
	if b.checkNotEmpty("headers.name", name) && b.checkNotEmpty("headers.value", value) {
		b.message.Headers = append(b.message.Headers, EmailHeader{Name: name, Value: value})
	}

	return b
}

// Build returns the email request. One of html, text or template is
// required, and subject is required unless a template is used.
func (b *EmailBuilder) Build() (*EmailRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	msg := b.message.clone()

	if len(msg.To) == 0 {
		return nil, &ValidationError{Field: "to", Reason: "at least one recipient is required"}
	}

	if msg.HTML == "" && msg.Text == "" && msg.TemplateID == "" {
		return nil, &ValidationError{Field: "html", Reason: "either html, text or template_id must be provided"}
	}

	if msg.TemplateID == "" {
		if err := requireSet("subject", msg.Subject); err != nil {
			return nil, err
		}

		if msg.From == nil {
			return nil, &ValidationError{Field: "from", Reason: "is required unless a template defines it"}
		}
	}

	if err := validateStruct(msg); err != nil {
		return nil, err
	}

	return &EmailRequest{message: msg}, nil
}

// Copy returns an independent builder with the same state.
func (b *EmailBuilder) Copy() *EmailBuilder {
	return &EmailBuilder{builder: b.builder, fs: b.fs, message: b.message.clone()}
}

// Reset clears all fields and any recorded error.
func (b *EmailBuilder) Reset() *EmailBuilder {
	b.builder = builder{}
	b.message = emailMessage{}

	return b
}

func (b *EmailBuilder) settings() *EmailSettings {
	if b.message.Settings == nil {
		b.message.Settings = &EmailSettings{}
	}

	return b.message.Settings
}

func (b *EmailBuilder) readFile(field, path string) ([]byte, bool) {
	if !b.checkNotEmpty(field, path) {
		return nil, false
	}

	content, err := afero.ReadFile(b.fs, path)
	if err != nil {
		b.fail(field, path, fmt.Sprintf("reading file: %v", err))

		return nil, false
	}

	return content, true
}

// BulkEmailRequest is a built batch of emails.
type BulkEmailRequest struct {
	messages []emailMessage
}

// Payload returns the JSON array body.
func (r *BulkEmailRequest) Payload() any {
	out := make([]emailMessage, len(r.messages))
	for i, m := range r.messages {
		out[i] = m.clone()
	}

	return out
}

// Len returns the number of emails in the batch.
func (r *BulkEmailRequest) Len() int {
	return len(r.messages)
}

// NewBulkEmailRequest groups built emails into one bulk request.
func NewBulkEmailRequest(emails ...*EmailRequest) (*BulkEmailRequest, error) {
	if len(emails) == 0 {
		return nil, &ValidationError{Field: "emails", Reason: "at least one email is required"}
	}

	if len(emails) > MaxBulkEmails {
		return nil, &ValidationError{Field: "emails", Value: len(emails), Reason: fmt.Sprintf("at most %d emails per bulk request", MaxBulkEmails)}
	}

	messages := make([]emailMessage, 0, len(emails))
	for i, email := range emails {
		if email == nil {
			return nil, &ValidationError{Field: fmt.Sprintf("emails[%d]", i), Reason: "is nil"}
		}

		messages = append(messages, email.message.clone())
	}

	return &BulkEmailRequest{messages: messages}, nil
}

// BulkStatusRequest identifies one bulk email batch.
type BulkStatusRequest struct {
	bulkEmailID string
}

// BulkEmailID returns the batch identifier.
func (r *BulkStatusRequest) BulkEmailID() string {
	return r.bulkEmailID
}

// NewBulkStatusRequest addresses the batch returned by a bulk send.
func NewBulkStatusRequest(bulkEmailID string) (*BulkStatusRequest, error) {
	if err := requireSet("bulk_email_id", bulkEmailID); err != nil {
		return nil, err
	}

	return &BulkStatusRequest{bulkEmailID: strings.TrimSpace(bulkEmailID)}, nil
}
