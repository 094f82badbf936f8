package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewActivityCommand creates the activity command group.
func NewActivityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Browse email activity",
		Long:  "List and inspect email activity of a domain. Ranges are limited to seven days.",
	}

	cmd.AddCommand(newActivityListCommand())
	cmd.AddCommand(newActivityGetCommand())

	return cmd
}

func newActivityListCommand() *cobra.Command {
	var (
		list     listFlags
		from, to string
		events   []string
	)

	cmd := &cobra.Command{
		Use:   "list DOMAIN_ID",
		Short: "List email activity",
		Long:  "List activity of a domain between --from and --to, optionally filtered by event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := dateRange(from, to)
			if err != nil {
				return err
			}

			builder := mailersend.NewActivityBuilder().DomainID(args[0]).DateFrom(start).DateTo(end)
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			if len(events) > 0 {
				builder.Event(events...)
			}

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("activity", err)
			}

			return call(cmd, []string{"id", "type", "email.recipient.email", "email.subject", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Activity().List(ctx, req)
				})
		},
	}

	list.register(cmd)
	cmd.Flags().StringVar(&from, "from", "-24h", "start of the range")
	cmd.Flags().StringVar(&to, "to", "", "end of the range (default now)")
	cmd.Flags().StringSliceVar(&events, "event", nil, "filter by event (repeatable)")

	return cmd
}

func newActivityGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTIVITY_ID",
		Short: "Get one activity",
		Long:  "Display a single activity record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewActivityBuilder().ActivityID(args[0]).BuildGet()
			if err != nil {
				return buildErr("activity", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Activity().Get(ctx, req)
			})
		},
	}
}

// NewAnalyticsCommand creates the analytics command group.
func NewAnalyticsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Read email analytics",
		Long:  "Read activity counts by date and opens by country, user agent or reading environment",
	}

	cmd.AddCommand(newAnalyticsDateCommand())
	cmd.AddCommand(newAnalyticsOpensCommand())

	return cmd
}

type analyticsFlags struct {
	domainID string
	from, to string
	tags     []string
}

func (f *analyticsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.domainID, "domain-id", "", "limit to one domain")
	cmd.Flags().StringVar(&f.from, "from", "-168h", "start of the range")
	cmd.Flags().StringVar(&f.to, "to", "", "end of the range (default now)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "filter by tag (repeatable)")
}

func (f *analyticsFlags) builder() (*mailersend.AnalyticsBuilder, error) {
	start, end, err := dateRange(f.from, f.to)
	if err != nil {
		return nil, err
	}

	builder := mailersend.NewAnalyticsBuilder().DateRange(start, end)

	if f.domainID != "" {
		builder.DomainID(f.domainID)
	}

	if len(f.tags) > 0 {
		builder.Tag(f.tags...)
	}

	return builder, nil
}

func newAnalyticsDateCommand() *cobra.Command {
	var (
		shared  analyticsFlags
		events  []string
		groupBy string
	)

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Activity counts by date",
		Long:  "Count the given events per day, week, month or year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := shared.builder()
			if err != nil {
				return err
			}

			builder.Event(events...)

			if groupBy != "" {
				builder.GroupBy(groupBy)
			}

			req, err := builder.BuildByDate()
			if err != nil {
				return buildErr("analytics", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Analytics().ByDate(ctx, req)
			})
		},
	}

	shared.register(cmd)
	cmd.Flags().StringSliceVar(&events, "event", []string{mailersend.EventSent, mailersend.EventDelivered}, "event to count (repeatable)")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "days, weeks, months or years")

	return cmd
}

func newAnalyticsOpensCommand() *cobra.Command {
	var (
		shared analyticsFlags
		by     string
	)

	cmd := &cobra.Command{
		Use:   "opens",
		Short: "Opens by country, user agent or reading environment",
		Long:  "Break down opens with --by country, ua-name or ua-type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if by != "country" && by != "ua-name" && by != "ua-type" {
				return fmt.Errorf("%w: %q", constants.ErrInvalidBreakdown, by)
			}

			builder, err := shared.builder()
			if err != nil {
				return err
			}

			req, err := builder.BuildOpens()
			if err != nil {
				return buildErr("analytics", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				switch by {
				case "ua-name":
					return client.Analytics().OpensByUserAgent(ctx, req)
				case "ua-type":
					return client.Analytics().OpensByReadingEnvironment(ctx, req)
				default:
					return client.Analytics().OpensByCountry(ctx, req)
				}
			})
		},
	}

	shared.register(cmd)
	cmd.Flags().StringVar(&by, "by", "country", "country, ua-name or ua-type")

	return cmd
}
