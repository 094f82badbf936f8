package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	SDKVersion string `json:"sdk_version" yaml:"sdk_version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the MailerSend CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:    version,
				SDKVersion: constants.Version,
				Commit:     commit,
				Built:      date,
			}

			out := cmd.OutOrStdout()

			switch viper.GetString(KeyOutput) {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

				return encoder.Encode(info)
			case constants.FormatYAML:
				return yaml.NewEncoder(out).Encode(info)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("SDK Version", info.SDKVersion)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
