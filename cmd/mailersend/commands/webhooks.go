package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage email webhooks",
		Long:    "List, create and delete the webhooks of a domain",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DOMAIN_ID",
		Short: "List webhooks",
		Long:  "List the webhooks of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewWebhooksBuilder().DomainID(args[0]).BuildList()
			if err != nil {
				return buildErr("webhooks", err)
			}

			return call(cmd, []string{"id", "name", "url", "enabled"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Webhooks().List(ctx, req)
				})
		},
	}
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		domainID, endpoint, name string
		events                   []string
		allEvents, disabled      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		Long:  "Create a webhook that posts the selected activity events to a URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewWebhooksBuilder().DomainID(domainID).URL(endpoint).Name(name)

			if allEvents {
				builder.AllActivityEvents()
			} else if len(events) > 0 {
				builder.Events(events...)
			}

			if disabled {
				builder.Enabled(false)
			}

			req, err := builder.BuildCreate()
			if err != nil {
				return buildErr("webhook", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Webhooks().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&domainID, "domain-id", "", "domain the webhook belongs to")
	cmd.Flags().StringVar(&endpoint, "url", "", "endpoint receiving the events")
	cmd.Flags().StringVar(&name, "name", "", "webhook name")
	cmd.Flags().StringSliceVar(&events, "event", nil, "event such as activity.sent (repeatable)")
	cmd.Flags().BoolVar(&allEvents, "all-events", false, "subscribe to every activity event")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the webhook disabled")

	_ = cmd.MarkFlagRequired("domain-id")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
		Long:  "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewWebhooksBuilder().WebhookID(args[0]).BuildGet()
			if err != nil {
				return buildErr("webhook", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Webhooks().Delete(ctx, req)
			})
		},
	}
}
