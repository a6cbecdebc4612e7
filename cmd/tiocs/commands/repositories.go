package commands

import (
	"fmt"

	"github.com/fivetwenty-io/containersecurity/internal/publish"
	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// listConfigKey holds default list options in the config file.
const listConfigKey = "repositories.list"

var repositoryColumns = []Column{
	{Header: "Name", Path: "name"},
	{Header: "Images", Path: "imagesCount"},
	{Header: "Labels", Path: "labelsCount"},
	{Header: "Vulnerabilities", Path: "vulnerabilitiesCount"},
	{Header: "Malware", Path: "malwareCount"},
	{Header: "Pulls", Path: "pullCount"},
	{Header: "Last Pushed", Path: "lastPush"},
}

var imageColumns = []Column{
	{Header: "Repository", Path: "repoName"},
	{Header: "Name", Path: "name"},
	{Header: "Tag", Path: "tag"},
	{Header: "Digest", Path: "digest"},
	{Header: "Score", Path: "score"},
	{Header: "Status", Path: "status"},
	{Header: "Last Scanned", Path: "lastScanned"},
}

// NewRepositoriesCommand creates the repositories command group.
func NewRepositoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repositories",
		Aliases: []string{"repository", "repos"},
		Short:   "Manage repositories",
		Long:    "List, inspect and delete Container Security repositories",
	}

	cmd.AddCommand(newRepositoriesListCommand())
	cmd.AddCommand(newRepositoriesDetailsCommand())
	cmd.AddCommand(newRepositoriesDeleteCommand())

	return cmd
}

func newRepositoriesListCommand() *cobra.Command {
	var publishURL string
	var publishSubject string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List repositories, fetching pages until the server runs out or the page cap is reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := listQuery(viper.GetStringMap(listConfigKey), cmd.Flags())
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			it, err := client.Repositories().List(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to list repositories: %w", err)
			}

			if publishURL != "" {
				return publishRepositories(cmd, it, publishURL, publishSubject)
			}

			repositories, err := it.All()
			if err != nil {
				return fmt.Errorf("failed to list repositories: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), repositories, repositoryColumns, "No repositories found")
		},
	}

	cmd.Flags().String("contains", "", "only repositories whose name contains this string")
	cmd.Flags().String("image", "", "only repositories containing this image name")
	cmd.Flags().Int("limit", cs.DefaultLimit, "records per page")
	cmd.Flags().Int("offset", cs.DefaultOffset, "offset of the first record")
	cmd.Flags().Int("pages", 0, "maximum number of pages to fetch (unlimited when unset)")
	cmd.Flags().StringVar(&publishURL, "publish-url", "", "NATS server to publish records to instead of printing")
	cmd.Flags().StringVar(&publishSubject, "publish-subject", "containersecurity.repositories", "NATS subject for published records")

	return cmd
}

// listQuery merges list defaults from the config file with the flags that
// were set explicitly. Flags win.
func listQuery(defaults map[string]any, flags *pflag.FlagSet) (*cs.RepositoryQuery, error) {
	query, err := cs.RepositoryQueryFromMap(defaults)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidListConfig, err)
	}

	if flags.Changed("contains") {
		value, _ := flags.GetString("contains")
		query.WithContains(value)
	}

	if flags.Changed("image") {
		value, _ := flags.GetString("image")
		query.WithImage(value)
	}

	if flags.Changed("limit") {
		value, _ := flags.GetInt("limit")
		query.WithLimit(value)
	}

	if flags.Changed("offset") {
		value, _ := flags.GetInt("offset")
		query.WithOffset(value)
	}

	if flags.Changed("pages") {
		value, _ := flags.GetInt("pages")
		query.WithPages(value)
	}

	return query, nil
}

func publishRepositories(cmd *cobra.Command, it *cs.Iterator[cs.Record], url, subject string) error {
	publisher, err := publish.Connect(url, subject)
	if err != nil {
		return fmt.Errorf("failed to connect publisher: %w", err)
	}

	count, err := publisher.PublishAll(it)

	closeErr := publisher.Close()

	if err != nil {
		return fmt.Errorf("failed to publish repositories after %d records: %w", count, err)
	}

	if closeErr != nil {
		return fmt.Errorf("failed to publish repositories: %w", closeErr)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published %d repositories to %s\n", count, subject)

	return nil
}

func newRepositoriesDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details NAME",
		Short: "Show repository images",
		Long:  "List the images stored in a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			images, err := client.Repositories().Details(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get repository details: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), images, imageColumns, "No images found")
		},
	}
}

func newRepositoriesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a repository",
		Long:  "Delete a repository and the images it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			// Confirm deletion unless forced
			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Are you sure you want to delete repository '%s'?", name)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")

				return nil
			}

			client, err := CreateClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if err := client.Repositories().Delete(cmd.Context(), name); err != nil {
				return fmt.Errorf("failed to delete repository: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted repository '%s'\n", name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
