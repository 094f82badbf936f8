package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewMessagesCommand creates the messages command group.
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message"},
		Short:   "Browse sent messages",
		Long:    "List and inspect sent messages",
	}

	cmd.AddCommand(newMessagesListCommand())
	cmd.AddCommand(newMessagesGetCommand())

	return cmd
}

func newMessagesListCommand() *cobra.Command {
	var list listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		Long:  "List sent messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewMessagesBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("messages", err)
			}

			return call(cmd, []string{"id", "created_at", "updated_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Messages().List(ctx, req)
				})
		},
	}

	list.register(cmd)

	return cmd
}

func newMessagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MESSAGE_ID",
		Short: "Get message details",
		Long:  "Display a sent message with its emails and domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewMessagesBuilder().MessageID(args[0]).BuildGet()
			if err != nil {
				return buildErr("message", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Messages().Get(ctx, req)
			})
		},
	}
}
