package commands

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewEmailCommand creates the email command group.
func NewEmailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send transactional email",
		Long:  "Send email and check the status of bulk sends",
	}

	cmd.AddCommand(newEmailSendCommand())
	cmd.AddCommand(newEmailBulkStatusCommand())

	return cmd
}

type emailSendOptions struct {
	from        string
	to          []string
	cc          []string
	bcc         []string
	replyTo     string
	subject     string
	html        string
	text        string
	htmlFile    string
	textFile    string
	templateID  string
	tags        []string
	attachments []string
	inline      []string
	sendAt      string
	precedence  bool
}

func newEmailSendCommand() *cobra.Command {
	opts := &emailSendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an email",
		Long: `Send one email. Addresses accept "Name <user@example.com>" or a bare address.
--send-at takes an absolute date or an offset such as 2h.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.build()
			if err != nil {
				return err
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Emails().Send(ctx, req)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.from, "from", "", "sender address")
	flags.StringSliceVar(&opts.to, "to", nil, "recipient address (repeatable)")
	flags.StringSliceVar(&opts.cc, "cc", nil, "cc address (repeatable)")
	flags.StringSliceVar(&opts.bcc, "bcc", nil, "bcc address (repeatable)")
	flags.StringVar(&opts.replyTo, "reply-to", "", "reply-to address")
	flags.StringVarP(&opts.subject, "subject", "s", "", "subject line")
	flags.StringVar(&opts.html, "html", "", "HTML body")
	flags.StringVar(&opts.text, "text", "", "plain text body")
	flags.StringVar(&opts.htmlFile, "html-file", "", "read the HTML body from a file")
	flags.StringVar(&opts.textFile, "text-file", "", "read the text body from a file")
	flags.StringVar(&opts.templateID, "template", "", "template ID")
	flags.StringSliceVar(&opts.tags, "tag", nil, "tag (repeatable)")
	flags.StringSliceVar(&opts.attachments, "attach", nil, "file to attach (repeatable)")
	flags.StringSliceVar(&opts.inline, "inline", nil, "file to embed inline (repeatable)")
	flags.StringVar(&opts.sendAt, "send-at", "", "schedule the email")
	flags.BoolVar(&opts.precedence, "precedence-bulk", false, "set the Precedence: bulk header")

	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (o *emailSendOptions) build() (*mailersend.EmailRequest, error) {
	builder := mailersend.NewEmailBuilder()

	if o.from != "" {
		address := parseAddress(o.from)
		builder.From(address.Address, address.Name)
	}

	for _, raw := range o.to {
		address := parseAddress(raw)
		builder.To(address.Address, address.Name)
	}

	for _, raw := range o.cc {
		address := parseAddress(raw)
		builder.CC(address.Address, address.Name)
	}

	for _, raw := range o.bcc {
		address := parseAddress(raw)
		builder.BCC(address.Address, address.Name)
	}

	if o.replyTo != "" {
		address := parseAddress(o.replyTo)
		builder.ReplyTo(address.Address, address.Name)
	}

	if o.subject != "" {
		builder.Subject(o.subject)
	}

	if o.html != "" {
		builder.HTML(o.html)
	}

	if o.htmlFile != "" {
		builder.HTMLFile(o.htmlFile)
	}

	if o.text != "" {
		builder.Text(o.text)
	}

	if o.textFile != "" {
		builder.TextFile(o.textFile)
	}

	if o.templateID != "" {
		builder.Template(o.templateID)
	}

	if len(o.tags) > 0 {
		builder.Tag(o.tags...)
	}

	for _, path := range o.attachments {
		builder.AttachFile(path, mailersend.DispositionAttachment)
	}

	for _, path := range o.inline {
		builder.AttachFile(path, mailersend.DispositionInline)
	}

	if o.precedence {
		builder.PrecedenceBulk(true)
	}

	if o.sendAt != "" {
		at, err := parseDate(o.sendAt, timeNow())
		if err != nil {
			return nil, fmt.Errorf("--send-at: %w", err)
		}

		builder.SendAt(at)
	}

	req, err := builder.Build()
	if err != nil {
		return nil, buildErr("email", err)
	}

	return req, nil
}

// parseAddress accepts "Name <user@example.com>" or a bare address.
// Anything unparsable is passed through for the builder to reject.
func parseAddress(raw string) *mail.Address {
	address, err := mail.ParseAddress(raw)
	if err != nil {
		return &mail.Address{Address: strings.TrimSpace(raw)}
	}

	return address
}

func newEmailBulkStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-status BULK_EMAIL_ID",
		Short: "Show the status of a bulk send",
		Long:  "Display the state, counts and validation errors of a bulk email batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewBulkStatusRequest(args[0])
			if err != nil {
				return buildErr("bulk status", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Emails().GetBulkStatus(ctx, req)
			})
		},
	}
}
