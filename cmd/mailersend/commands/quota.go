package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// NewQuotaCommand creates the quota command.
func NewQuotaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the API quota",
		Long:  "Display the daily request quota and how much of it remains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, nil, func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error) {
				return client.Quota().Get(ctx)
			})
		},
	}
}
