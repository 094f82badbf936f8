package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
)

// NewRootCommand creates the mailersend command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mailersend",
		Short: "MailerSend API CLI",
		Long: `A command-line interface for the MailerSend email and SMS API.

Set the API key with 'mailersend config set-token', the --api-key flag or the
MAILERSEND_API_KEY environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(KeyConfig, "c", "", "config file (default is $HOME/.mailersend/config.yml)")
	flags.String("api-key", "", "MailerSend API key")
	flags.String("base-url", "", "API base URL")
	flags.StringP(KeyOutput, "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP(KeyVerbose, "v", false, "log HTTP requests to stderr")
	flags.Bool("no-color", false, "disable colored output")
	flags.Duration(KeyTimeout, 0, "HTTP timeout per attempt (default 30s)")
	flags.Bool("retry-throttled", false, "retry requests rejected with 429")

	for key, flag := range map[string]string{
		KeyConfig:         KeyConfig,
		KeyAPIKey:         "api-key",
		KeyBaseURL:        "base-url",
		KeyOutput:         KeyOutput,
		KeyVerbose:        KeyVerbose,
		KeyNoColor:        "no-color",
		KeyTimeout:        KeyTimeout,
		KeyRetryThrottled: "retry-throttled",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewEmailCommand())
	rootCmd.AddCommand(NewSMSCommand())
	rootCmd.AddCommand(NewActivityCommand())
	rootCmd.AddCommand(NewAnalyticsCommand())
	rootCmd.AddCommand(NewDomainsCommand())
	rootCmd.AddCommand(NewMessagesCommand())
	rootCmd.AddCommand(NewSuppressionsCommand())
	rootCmd.AddCommand(NewTokensCommand())
	rootCmd.AddCommand(NewWebhooksCommand())
	rootCmd.AddCommand(NewQuotaCommand())

	return rootCmd
}

// initConfig reads the config file and environment. A missing config file
// is not an error.
func initConfig(cmd *cobra.Command) error {
	if cfgFile := viper.GetString(KeyConfig); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigName(constants.ConfigFileName)
		viper.SetConfigType(constants.ConfigFileType)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(KeyVerbose) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
		}
	}

	return nil
}
