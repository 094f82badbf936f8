package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage sending domains",
		Long:    "List, inspect, add and remove sending domains and check their DNS",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())
	cmd.AddCommand(newDomainsDNSCommand())
	cmd.AddCommand(newDomainsVerifyCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	var (
		list     listFlags
		verified bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains",
		Long:  "List the sending domains of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewDomainsBuilder()
			list.apply(func(p int) { builder.Page(p) }, func(l int) { builder.Limit(l) })

			if cmd.Flags().Changed("verified") {
				builder.Verified(verified)
			}

			req, err := builder.BuildList()
			if err != nil {
				return buildErr("domains", err)
			}

			return call(cmd, []string{"id", "name", "is_verified", "created_at"},
				func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
					return client.Domains().List(ctx, req)
				})
		},
	}

	list.register(cmd)
	cmd.Flags().BoolVar(&verified, "verified", false, "filter by verification state")

	return cmd
}

// domainCommand builds the single-domain commands that only differ in the
// client method they call.
func domainCommand(use, short, long string, op func(mailersend.DomainsClient) func(context.Context, *mailersend.DomainRequest) (*mailersend.Envelope, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DOMAIN_ID",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := mailersend.NewDomainsBuilder().DomainID(args[0]).BuildGet()
			if err != nil {
				return buildErr("domain", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return op(client.Domains())(ctx, req)
			})
		},
	}
}

func newDomainsGetCommand() *cobra.Command {
	return domainCommand("get", "Get domain details", "Display a domain and its settings",
		func(c mailersend.DomainsClient) func(context.Context, *mailersend.DomainRequest) (*mailersend.Envelope, error) {
			return c.Get
		})
}

func newDomainsDeleteCommand() *cobra.Command {
	return domainCommand("delete", "Delete a domain", "Remove a sending domain from the account",
		func(c mailersend.DomainsClient) func(context.Context, *mailersend.DomainRequest) (*mailersend.Envelope, error) {
			return c.Delete
		})
}

func newDomainsDNSCommand() *cobra.Command {
	return domainCommand("dns", "Show DNS records", "Display the DNS records required by a domain",
		func(c mailersend.DomainsClient) func(context.Context, *mailersend.DomainRequest) (*mailersend.Envelope, error) {
			return c.DNSRecords
		})
}

func newDomainsVerifyCommand() *cobra.Command {
	return domainCommand("verify", "Check domain verification", "Display the verification status of each DNS record",
		func(c mailersend.DomainsClient) func(context.Context, *mailersend.DomainRequest) (*mailersend.Envelope, error) {
			return c.VerificationStatus
		})
}

func newDomainsCreateCommand() *cobra.Command {
	var returnPath, tracking, inbound string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Add a domain",
		Long:  "Add a sending domain. DNS records must be published before it can send.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := mailersend.NewDomainsBuilder().Name(args[0])

			if returnPath != "" {
				builder.ReturnPathSubdomain(returnPath)
			}

			if tracking != "" {
				builder.CustomTrackingSubdomain(tracking)
			}

			if inbound != "" {
				builder.InboundRoutingSubdomain(inbound)
			}

			req, err := builder.BuildCreate()
			if err != nil {
				return buildErr("domain", err)
			}

			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Domains().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&returnPath, "return-path-subdomain", "", "return path subdomain")
	cmd.Flags().StringVar(&tracking, "tracking-subdomain", "", "custom tracking subdomain")
	cmd.Flags().StringVar(&inbound, "inbound-subdomain", "", "inbound routing subdomain")

	return cmd
}
