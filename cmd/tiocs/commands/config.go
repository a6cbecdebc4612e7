package commands

import (
	"github.com/fivetwenty-io/containersecurity/internal/constants"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Inspect the tiocs CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after merging flags, environment and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderRecord(cmd.OutOrStdout(), effectiveConfig(), []Column{
				{Header: "Config File", Path: "config_file"},
				{Header: "API", Path: "api"},
				{Header: "Access Key", Path: "access_key"},
				{Header: "Secret Key", Path: "secret_key"},
				{Header: "Output", Path: "output"},
				{Header: "Retry Max", Path: "retry_max"},
				{Header: "Repositories List", Path: "repositories_list"},
			})
		},
	}
}

// effectiveConfig returns the merged settings with secrets masked.
func effectiveConfig() cs.Record {
	api := viper.GetString("api")
	if api == "" {
		api = constants.DefaultAPIEndpoint
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = NotAvailable
	}

	return cs.Record{
		"config_file":       configFile,
		"api":               api,
		"access_key":        mask(viper.GetString("access_key")),
		"secret_key":        mask(viper.GetString("secret_key")),
		"output":            viper.GetString("output"),
		"retry_max":         viper.GetInt("retry_max"),
		"repositories_list": viper.GetStringMap(listConfigKey),
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}

	return Masked
}
