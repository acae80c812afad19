package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewFoldersCommand creates the folders command group.
func NewFoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Manage folders",
		Long:    "List the folders of the connected account (IMAP-style mailboxes)",
	}

	cmd.AddCommand(newFoldersListCommand())

	return cmd
}

func newFoldersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders",
		Long:  "List the folders of the connected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			folders, err := client.Folders().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			return outputFolders(folders)
		},
	}
}

func outputFolders(folders []*nylas.Folder) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, folders)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, folders)
	default:
		return renderFoldersTable(folders)
	}
}

func renderFoldersTable(folders []*nylas.Folder) error {
	if len(folders) == 0 {
		_, _ = os.Stdout.WriteString("No folders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Display Name")

	for _, folder := range folders {
		_ = table.Append(folder.ID, FormatValue(folder.Name), FormatValue(folder.DisplayName))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render folders table: %w", err)
	}

	return nil
}
