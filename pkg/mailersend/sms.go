package mailersend

import (
	"fmt"
	"unicode/utf8"
)

// SMS limits.
const (
	MaxSMSRecipients = 50
	MaxSMSText       = 2048
)

// SMSPersonalization binds template variables to one recipient number.
type SMSPersonalization struct {
	PhoneNumber string         `json:"phone_number" validate:"required,e164"`
	Data        map[string]any `json:"data"`
}

// SMSRequest sends one text message to up to 50 numbers.
type SMSRequest struct {
	jsonBody
}

// SMSBuilder assembles SMS send requests.
type SMSBuilder struct {
	builder

	from            string
	to              []string
	text            string
	personalization []SMSPersonalization
}

// NewSMSBuilder creates an SMS builder.
func NewSMSBuilder() *SMSBuilder {
	return &SMSBuilder{}
}

// From sets the sending number.
func (b *SMSBuilder) From(number string) *SMSBuilder {
	if b.checkPhone("from", number) {
		b.from = number
	}

	return b
}

// To replaces the recipient numbers.
func (b *SMSBuilder) To(numbers ...string) *SMSBuilder {
	if b.failed() {
		return b
	}

	b.to = nil

	return b.AddRecipient(numbers...)
}

// AddRecipient appends recipient numbers.
func (b *SMSBuilder) AddRecipient(numbers ...string) *SMSBuilder {
	for _, number := range numbers {
		if !b.checkPhone("to", number) {
			return b
		}

		if len(b.to) >= MaxSMSRecipients {
			b.fail("to", number, fmt.Sprintf("maximum %d recipients allowed", MaxSMSRecipients))

			return b
		}

		b.to = append(b.to, number)
	}

	return b
}

// Text sets the message body.
func (b *SMSBuilder) Text(text string) *SMSBuilder {
	if !b.checkNotEmpty("text", text) {
		return b
	}

	if utf8.RuneCountInString(text) > MaxSMSText {
		b.fail("text", nil, fmt.Sprintf("cannot exceed %d characters", MaxSMSText))

		return b
	}

	b.text = text

	return b
}

// Personalize sets variables for one recipient number.
func (b *SMSBuilder) Personalize(number string, data map[string]any) *SMSBuilder {
	if b.checkPhone("personalization.phone_number", number) {
		b.personalization = append(b.personalization, SMSPersonalization{
			PhoneNumber: number,
			Data:        cloneMap(data),
		})
	}

	return b
}

// Build returns the send request. From, at least one recipient and the text
// are required; personalized numbers must be recipients.
func (b *SMSBuilder) Build() (*SMSRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireEach("from", b.from, "text", b.text); err != nil {
		return nil, err
	}

	if len(b.to) == 0 {
		return nil, &ValidationError{Field: "to", Reason: "at least one recipient is required"}
	}

	body := map[string]any{
		"from": b.from,
		"to":   stringsToAny(b.to),
		"text": b.text,
	}

	if len(b.personalization) > 0 {
		items := make([]any, len(b.personalization))

		for i, p := range b.personalization {
			if !containsString(b.to, p.PhoneNumber) {
				return nil, &ValidationError{
					Field:  "personalization.phone_number",
					Value:  p.PhoneNumber,
					Reason: "is not in the recipient list",
				}
			}

			items[i] = map[string]any{"phone_number": p.PhoneNumber, "data": cloneMap(p.Data)}
		}

		body["personalization"] = items
	}

	return &SMSRequest{jsonBody{body: body}}, nil
}

// Reset clears every field and the sticky error.
func (b *SMSBuilder) Reset() *SMSBuilder {
	*b = SMSBuilder{}

	return b
}
