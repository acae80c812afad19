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

// NewLabelsCommand creates the labels command group.
func NewLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage labels",
		Long:    "List the labels of the connected account (Gmail-style mailboxes)",
	}

	cmd.AddCommand(newLabelsListCommand())

	return cmd
}

func newLabelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long:  "List the labels of the connected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			labels, err := client.Labels().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list labels: %w", err)
			}

			return outputLabels(labels)
		},
	}
}

func outputLabels(labels []*nylas.Label) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, labels)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, labels)
	default:
		return renderLabelsTable(labels)
	}
}

func renderLabelsTable(labels []*nylas.Label) error {
	if len(labels) == 0 {
		_, _ = os.Stdout.WriteString("No labels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Display Name")

	for _, label := range labels {
		_ = table.Append(label.ID, FormatValue(label.Name), FormatValue(label.DisplayName))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render labels table: %w", err)
	}

	return nil
}
