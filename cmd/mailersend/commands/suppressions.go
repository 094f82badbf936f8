package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewSuppressionsCommand creates the suppressions command group.
func NewSuppressionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppressions",
		Short: "Manage suppression lists",
		Long: `Manage the blocklist, hard-bounces, spam-complaints, unsubscribes and
on-hold-list suppression lists. Entries cannot be added to the on-hold list.`,
	}

	cmd.AddCommand(newSuppressionsListCommand())
	cmd.AddCommand(newSuppressionsAddCommand())
	cmd.AddCommand(newSuppressionsDeleteCommand())

	return cmd
}

func newSuppressionsListCommand() *cobra.Command {
	var (
		list     listFlags
		domainID string
	)

	cmd := &cobra.Command{
		Use:   "list LIST",
		Short: "List suppressed entries",
		Long:  "List the entries of one suppression list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewRecipientsBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			if domainID != "" {
				builder.DomainID(domainID)
			}

			req, err := builder.BuildListSuppressions(mailersend.SuppressionKind(args[0]))
			if err != nil {
				return buildErr("suppressions", err)
			}

			return call(cmd, []string{"id", "recipient.email", "pattern", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Recipients().ListSuppressions(ctx, req)
				})
		},
	}

	list.register(cmd)
	cmd.Flags().StringVar(&domainID, "domain-id", "", "limit to one domain")

	return cmd
}

func newSuppressionsAddCommand() *cobra.Command {
	var (
		domainID   string
		recipients []string
		patterns   []string
	)

	cmd := &cobra.Command{
		Use:   "add LIST",
		Short: "Add entries to a suppression list",
		Long:  "Add recipients, or blocklist patterns, to a suppression list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewRecipientsBuilder().DomainID(domainID)

			if len(recipients) > 0 {
				builder.Recipient(recipients...)
			}

			if len(patterns) > 0 {
				builder.Pattern(patterns...)
			}

			req, err := builder.BuildAddSuppressions(mailersend.SuppressionKind(args[0]))
			if err != nil {
				return buildErr("suppressions", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Recipients().AddSuppressions(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&domainID, "domain-id", "", "domain the entries apply to")
	cmd.Flags().StringSliceVar(&recipients, "recipient", nil, "email address (repeatable)")
	cmd.Flags().StringSliceVar(&patterns, "pattern", nil, "blocklist pattern such as .*@example.com (repeatable)")

	_ = cmd.MarkFlagRequired("domain-id")

	return cmd
}

func newSuppressionsDeleteCommand() *cobra.Command {
	var (
		domainID string
		ids      []string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "delete LIST",
		Short: "Remove entries from a suppression list",
		Long:  "Remove entries by ID, or every entry with --all",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewRecipientsBuilder()

			if domainID != "" {
				builder.DomainID(domainID)
			}

			if len(ids) > 0 {
				builder.ID(ids...)
			}

			if all {
				builder.All()
			}

			kind := mailersend.SuppressionKind(args[0])

			req, err := builder.BuildDeleteSuppressions(kind)
			if err != nil {
				return buildErr("suppressions", err)
			}

			err = call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Recipients().DeleteSuppressions(ctx, req)
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Removed entries from %s\n", kind)

			return nil
		},
	}

	cmd.Flags().StringVar(&domainID, "domain-id", "", "limit to one domain")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "entry ID (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "remove every entry")

	return cmd
}
