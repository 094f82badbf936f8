package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewTokensCommand creates the tokens command group.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tokens",
		Aliases: []string{"token"},
		Short:   "Manage API tokens",
		Long:    "List, create, pause, resume and delete API tokens",
	}

	cmd.AddCommand(newTokensListCommand())
	cmd.AddCommand(newTokensCreateCommand())
	cmd.AddCommand(newTokensStatusCommand("pause", mailersend.TokenStatusPause))
	cmd.AddCommand(newTokensStatusCommand("unpause", mailersend.TokenStatusUnpause))
	cmd.AddCommand(newTokensDeleteCommand())

	return cmd
}

func newTokensListCommand() *cobra.Command {
	var list listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API tokens",
		Long:  "List the API tokens of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewTokensBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("tokens", err)
			}

			return call(cmd, []string{"id", "name", "status", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Tokens().List(ctx, req)
				})
		},
	}

	list.register(cmd)

	return cmd
}

func newTokensCreateCommand() *cobra.Command {
	var (
		domainID   string
		scopes     []string
		fullAccess bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an API token",
		Long:  "Create a token for one domain. The token value is only shown once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewTokensBuilder().Name(args[0]).DomainID(domainID)

			if fullAccess {
				builder.FullAccess()
			} else if len(scopes) > 0 {
				builder.Scope(scopes...)
			}

			req, err := builder.BuildCreate()
			if err != nil {
				return buildErr("token", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Tokens().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&domainID, "domain-id", "", "domain the token is bound to")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scope such as email_full (repeatable)")
	cmd.Flags().BoolVar(&fullAccess, "full-access", false, "grant every scope")

	_ = cmd.MarkFlagRequired("domain-id")

	return cmd
}

func newTokensStatusCommand(use, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TOKEN_ID",
		Short: "Set token status to " + status,
		Long:  "Change the status of an API token to " + status,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewTokensBuilder().TokenID(args[0]).Status(status).BuildUpdateStatus()
			if err != nil {
				return buildErr("token", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Tokens().UpdateStatus(ctx, req)
			})
		},
	}
}

func newTokensDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TOKEN_ID",
		Short: "Delete an API token",
		Long:  "Revoke and delete an API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewTokensBuilder().TokenID(args[0]).BuildGet()
			if err != nil {
				return buildErr("token", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Tokens().Delete(ctx, req)
			})
		},
	}
}
