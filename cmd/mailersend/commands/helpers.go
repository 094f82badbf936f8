package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
	"github.com/fivetwenty-io/mailersend-go/internal/logging"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
	"github.com/fivetwenty-io/mailersend-go/pkg/msclient"
)

// Viper keys shared by the root command and the config command.
const (
	KeyAPIKey         = "api_key"
	KeyBaseURL        = "base_url"
	KeyOutput         = "output"
	KeyVerbose        = "verbose"
	KeyNoColor        = "no_color"
	KeyTimeout        = "timeout"
	KeyRetryThrottled = "retry_throttled"
)

// createClient builds an SDK client from the merged flag, env and file
// configuration.
func createClient(ctx context.Context) (mailersend.Client, error) {
	apiKey := strings.TrimSpace(viper.GetString(KeyAPIKey))
	if apiKey == "" && os.Getenv(mailersend.APIKeyEnv) == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &mailersend.Config{
		APIKey:      apiKey,
		BaseURL:     viper.GetString(KeyBaseURL),
		HTTPTimeout: viper.GetDuration(KeyTimeout),
	}

	if viper.GetBool(KeyVerbose) {
		config.Debug = true
		config.Logger = logging.NewConsole(os.Stderr, "debug", viper.GetBool(KeyNoColor)).WithComponent("http")
	}

	client, err := msclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// call runs one SDK operation, retrying throttled responses when
// --retry-throttled is set, then renders the envelope.
func call(cmd *cobra.Command, columns []string, op func(ctx context.Context, client mailersend.Client) (*mailersend.Envelope, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format := viper.GetString(KeyOutput)
	if format != "" && !validFormat(format) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}

	client, err := createClient(ctx)
	if err != nil {
		return err
	}

	attempt := func() (*mailersend.Envelope, error) {
		return op(ctx, client)
	}

	var env *mailersend.Envelope

	if viper.GetBool(KeyRetryThrottled) {
		env, err = retryThrottled(ctx, constants.CLIThrottleRetries, time.Second, attempt)
	} else {
		env, err = attempt()
	}

	if err != nil {
		return err
	}

	return renderEnvelope(cmd.OutOrStdout(), env, format, columns)
}

// buildErr prefixes builder validation failures with the flag context.
func buildErr(what string, err error) error {
	return fmt.Errorf("invalid %s request: %w", what, err)
}

// listFlags holds the page and limit flags of list commands. Zero means
// the API default.
type listFlags struct {
	page  int
	limit int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "results per page (10-100)")
}

// apply calls page and limit on a builder for the flags that were set.
func (f *listFlags) apply(page func(int), limit func(int)) {
	if f.page != 0 {
		page(f.page)
	}

	if f.limit != 0 {
		limit(f.limit)
	}
}
