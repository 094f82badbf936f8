package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mailersend-go/internal/auth"
	"github.com/fivetwenty-io/mailersend-go/internal/constants"
)

// KeyConfig is the viper key of the --config flag.
const KeyConfig = "config"

// Config is the persisted CLI configuration.
type Config struct {
	APIKey         string `json:"api_key,omitempty"         yaml:"api_key,omitempty"`
	BaseURL        string `json:"base_url,omitempty"        yaml:"base_url,omitempty"`
	Output         string `json:"output,omitempty"          yaml:"output,omitempty"`
	NoColor        bool   `json:"no_color,omitempty"        yaml:"no_color,omitempty"`
	Timeout        string `json:"timeout,omitempty"         yaml:"timeout,omitempty"`
	RetryThrottled bool   `json:"retry_throttled,omitempty" yaml:"retry_throttled,omitempty"`
}

// configKeys lists the keys accepted by config set and config unset.
var configKeys = []string{KeyAPIKey, KeyBaseURL, KeyOutput, KeyNoColor, KeyTimeout, KeyRetryThrottled}

// passwordReader reads the token without echo. Tests replace it.
var passwordReader = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// isTerminal reports whether stdin is interactive. Tests replace it.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.mailersend/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig()
			config.APIKey = auth.MaskKey(config.APIKey, constants.MaskedKeyVisible)

			return displayConfig(cmd.OutOrStdout(), config, viper.GetString(KeyOutput))
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, config, err := loadFileConfig()
			if err != nil {
				return err
			}

			if err := setConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveFileConfig(path, config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, config, err := loadFileConfig()
			if err != nil {
				return err
			}

			if err := unsetConfigValue(config, args[0]); err != nil {
				return err
			}

			if err := saveFileConfig(path, config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", args[0], path)

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [TOKEN]",
		Short: "Store the API key",
		Long:  "Store the MailerSend API key. Without an argument the key is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string

			if len(args) == 1 {
				token = args[0]
			} else {
				read, err := promptToken(cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				token = read
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return constants.ErrEmptyToken
			}

			path, config, err := loadFileConfig()
			if err != nil {
				return err
			}

			config.APIKey = token

			if err := saveFileConfig(path, config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key %s saved to %s\n",
				auth.MaskKey(token, constants.MaskedKeyVisible), path)

			return nil
		},
	}
}

func promptToken(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", constants.ErrNotATerminal
	}

	_, _ = fmt.Fprint(prompt, "API key: ")

	raw, err := passwordReader(fd)

	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return string(raw), nil
}

// effectiveConfig merges flags, environment and file the way createClient
// sees them.
func effectiveConfig() *Config {
	config := &Config{
		APIKey:         viper.GetString(KeyAPIKey),
		BaseURL:        viper.GetString(KeyBaseURL),
		Output:         viper.GetString(KeyOutput),
		NoColor:        viper.GetBool(KeyNoColor),
		RetryThrottled: viper.GetBool(KeyRetryThrottled),
	}

	if timeout := viper.GetDuration(KeyTimeout); timeout > 0 {
		config.Timeout = timeout.String()
	}

	return config
}

func displayConfig(w io.Writer, config *Config, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(config)
	case constants.FormatYAML:
		return yaml.NewEncoder(w).Encode(config)
	case constants.FormatTable, "":
		rows := map[string]string{
			"API Key":         config.APIKey,
			"Base URL":        config.BaseURL,
			"Output":          config.Output,
			"No Color":        strconv.FormatBool(config.NoColor),
			"Timeout":         config.Timeout,
			"Retry Throttled": strconv.FormatBool(config.RetryThrottled),
		}

		names := make([]string, 0, len(rows))
		for name := range rows {
			names = append(names, name)
		}

		sort.Strings(names)

		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")

		for _, name := range names {
			value := rows[name]
			if value == "" {
				value = constants.NotAvailable
			}

			_ = table.Append(name, value)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyAPIKey:
		if strings.TrimSpace(value) == "" {
			return constants.ErrEmptyToken
		}

		config.APIKey = strings.TrimSpace(value)
	case KeyBaseURL:
		config.BaseURL = value
	case KeyOutput:
		if !validFormat(value) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
		}

		config.Output = value
	case KeyTimeout:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = value
	case KeyNoColor, KeyRetryThrottled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		if key == KeyNoColor {
			config.NoColor = enabled
		} else {
			config.RetryThrottled = enabled
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = ""
	case KeyBaseURL:
		config.BaseURL = ""
	case KeyOutput:
		config.Output = ""
	case KeyTimeout:
		config.Timeout = ""
	case KeyNoColor:
		config.NoColor = false
	case KeyRetryThrottled:
		config.RetryThrottled = false
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath is --config when given, else ~/.mailersend/config.yml.
func configFilePath() (string, error) {
	if path := viper.GetString(KeyConfig); path != "" {
		return path, nil
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// loadFileConfig reads only the config file, so flags and environment
// overrides are never written back.
func loadFileConfig() (string, *Config, error) {
	path, err := configFilePath()
	if err != nil {
		return "", nil, err
	}

	config := &Config{}

	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, config, nil
	}

	if err != nil {
		return "", nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return "", nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return path, config, nil
}

func saveFileConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
