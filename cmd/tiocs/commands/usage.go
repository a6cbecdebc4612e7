package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUsageCommand creates the usage command group.
func NewUsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show organization usage",
		Long:  "Show usage statistics of the Container Security organization",
	}

	cmd.AddCommand(newUsageStatsCommand())

	return cmd
}

func newUsageStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		Long:  "Display usage statistics reported for the organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stats, err := client.Usage().Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get usage stats: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), stats, nil)
		},
	}
}
