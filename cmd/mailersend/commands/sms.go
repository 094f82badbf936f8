package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewSMSCommand creates the sms command group.
func NewSMSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Send and inspect text messages",
		Long:  "Send SMS and browse SMS activity and phone numbers",
	}

	cmd.AddCommand(newSMSSendCommand())
	cmd.AddCommand(newSMSActivityCommand())
	cmd.AddCommand(newSMSNumbersCommand())

	return cmd
}

func newSMSSendCommand() *cobra.Command {
	var (
		from string
		to   []string
		text string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text message",
		Long:  "Send a text message to up to 50 E.164 phone numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewSMSBuilder().From(from).To(to...).Text(text).Build()
			if err != nil {
				return buildErr("sms", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.SMS().Send(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "sending phone number")
	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient phone number (repeatable)")
	cmd.Flags().StringVar(&text, "text", "", "message text")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newSMSActivityCommand() *cobra.Command {
	var (
		list     listFlags
		numberID string
		from, to string
		statuses []string
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List SMS activity",
		Long:  "List SMS activity, optionally filtered by number, date range and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewSMSActivityBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			if numberID != "" {
				builder.SMSNumberID(numberID)
			}

			if from != "" {
				start, end, err := dateRange(from, to)
				if err != nil {
					return err
				}

				builder.DateFrom(start).DateTo(end)
			}

			if len(statuses) > 0 {
				builder.Status(statuses...)
			}

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("sms activity", err)
			}

			return call(cmd, []string{"id", "from", "to", "status", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.SMSActivity().List(ctx, req)
				})
		},
	}

	list.register(cmd)
	cmd.Flags().StringVar(&numberID, "sms-number-id", "", "filter by SMS number")
	cmd.Flags().StringVar(&from, "from", "", "start of the date range")
	cmd.Flags().StringVar(&to, "to", "", "end of the date range (default now)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (repeatable)")

	return cmd
}

func newSMSNumbersCommand() *cobra.Command {
	var (
		list   listFlags
		paused bool
	)

	cmd := &cobra.Command{
		Use:   "numbers",
		Short: "List SMS phone numbers",
		Long:  "List the phone numbers of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewSMSNumbersBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			if cmd.Flags().Changed("paused") {
				builder.Paused(paused)
			}

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("sms numbers", err)
			}

			return call(cmd, []string{"id", "telephone_number", "paused", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.SMSNumbers().List(ctx, req)
				})
		},
	}

	list.register(cmd)
	cmd.Flags().BoolVar(&paused, "paused", false, "filter by paused state")

	return cmd
}
