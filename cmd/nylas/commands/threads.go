package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewThreadsCommand creates the threads command group.
func NewThreadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "threads",
		Aliases: []string{"thread"},
		Short:   "Manage threads",
		Long:    "List the conversation threads of the connected account",
	}

	cmd.AddCommand(newThreadsListCommand())

	return cmd
}

func newThreadsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
		unread bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List threads",
		Long:  "List the conversation threads of the connected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset)
			if unread {
				params.WithFilter("unread", "true")
			}

			threads, err := client.Threads().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list threads: %w", err)
			}

			return outputThreads(threads)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().BoolVar(&unread, "unread", false, "only unread threads")

	return cmd
}

func outputThreads(threads []*nylas.Thread) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, threads)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, threads)
	default:
		return renderThreadsTable(threads)
	}
}

func renderThreadsTable(threads []*nylas.Thread) error {
	if len(threads) == 0 {
		_, _ = os.Stdout.WriteString("No threads found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "Messages", "Last Message", "Unread")

	for _, thread := range threads {
		_ = table.Append(thread.ID,
			Truncate(FormatValue(thread.Subject), constants.SubjectDisplayLength),
			strconv.Itoa(len(thread.MessageIDs)),
			FormatTimestamp(thread.LastMessageTimestamp),
			strconv.FormatBool(thread.Unread))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render threads table: %w", err)
	}

	return nil
}
