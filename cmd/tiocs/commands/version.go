package commands

import (
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the tiocs CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := cs.Record{
				"version": version,
				"commit":  commit,
				"built":   date,
			}

			return renderRecord(cmd.OutOrStdout(), info, []Column{
				{Header: "Version", Path: "version"},
				{Header: "Commit", Path: "commit"},
				{Header: "Built", Path: "built"},
			})
		},
	}
}
