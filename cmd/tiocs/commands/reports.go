package commands

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"
)

var reportColumns = []Column{
	{Header: "Digest", Path: "sha256"},
	{Header: "Risk Score", Path: "risk_score"},
	{Header: "OS", Path: "os"},
	{Header: "OS Version", Path: "os_version"},
	{Header: "Findings", Path: "findings.#"},
	{Header: "Malware", Path: "malware.#"},
	{Header: "Potentially Unwanted Programs", Path: "potentially_unwanted_programs.#"},
	{Header: "Updated", Path: "updated_at"},
}

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Retrieve image reports",
		Long:    "Retrieve vulnerability reports of scanned container images",
	}

	cmd.AddCommand(newReportsGetCommand())

	return cmd
}

func newReportsGetCommand() *cobra.Command {
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "get DIGEST",
		Short: "Get an image report",
		Long:  "Display the vulnerability report of the image with the given digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageDigest := args[0]

			if !noVerify {
				if err := verifyDigest(imageDigest); err != nil {
					return err
				}
			}

			client, err := CreateClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			report, err := client.Reports().Report(cmd.Context(), imageDigest)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), report, reportColumns)
		},
	}

	cmd.Flags().BoolVar(&noVerify, "no-verify-digest", false, "skip the local digest syntax check")

	return cmd
}

// verifyDigest checks that s is an algorithm-prefixed digest such as
// sha256:<64 hex>.
func verifyDigest(s string) error {
	if _, err := digest.Parse(s); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDigest, s, err)
	}

	return nil
}
