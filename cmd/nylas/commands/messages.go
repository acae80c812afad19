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

// NewMessagesCommand creates the messages command group.
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message", "msg"},
		Short:   "Manage messages",
		Long:    "List and inspect the messages of the connected account",
	}

	cmd.AddCommand(newMessagesListCommand())
	cmd.AddCommand(newMessagesGetCommand())

	return cmd
}

func newMessagesListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		threadID string
		unread   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		Long:  "List the messages of the connected account, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParams(limit, offset)
			if threadID != "" {
				params.WithFilter("thread_id", threadID)
			}

			if unread {
				params.WithFilter("unread", "true")
			}

			messages, err := client.Messages().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			return outputMessages(messages)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&threadID, "thread-id", "", "restrict to a single thread")
	cmd.Flags().BoolVar(&unread, "unread", false, "only unread messages")

	return cmd
}

func outputMessages(messages []*nylas.Message) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, messages)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, messages)
	default:
		return renderMessagesTable(messages)
	}
}

func renderMessagesTable(messages []*nylas.Message) error {
	if len(messages) == 0 {
		_, _ = os.Stdout.WriteString("No messages found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Date", "From", "Subject", "Unread")

	for _, message := range messages {
		_ = table.Append(message.ID,
			FormatTimestamp(message.Date),
			FormatParticipants(message.From),
			Truncate(FormatValue(message.Subject), constants.SubjectDisplayLength),
			strconv.FormatBool(message.Unread))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render messages table: %w", err)
	}

	return nil
}

func newMessagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MESSAGE_ID",
		Short: "Get message details",
		Long:  "Display detailed information about a specific message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			message, err := client.Messages().Find(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get message: %w", err)
			}

			return outputMessageDetails(message)
		},
	}
}

func outputMessageDetails(message *nylas.Message) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, message)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, message)
	default:
		return renderMessageDetailsTable(message)
	}
}

func renderMessageDetailsTable(message *nylas.Message) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", message.ID)
	_ = table.Append("Subject", FormatValue(message.Subject))
	_ = table.Append("From", FormatParticipants(message.From))
	_ = table.Append("To", FormatParticipants(message.To))

	if len(message.CC) > 0 {
		_ = table.Append("CC", FormatParticipants(message.CC))
	}

	_ = table.Append("Date", FormatTimestamp(message.Date))
	_ = table.Append("Thread", FormatValue(message.ThreadID))
	_ = table.Append("Snippet", Truncate(FormatValue(message.Snippet), constants.SnippetDisplayLength))
	_ = table.Append("Unread", strconv.FormatBool(message.Unread))
	_ = table.Append("Starred", strconv.FormatBool(message.Starred))

	if message.Folder.ID != "" {
		_ = table.Append("Folder", FormatValue(message.Folder.DisplayName))
	}

	for _, label := range message.Labels {
		_ = table.Append("Label", FormatValue(label.DisplayName))
	}

	for _, file := range message.Files {
		_ = table.Append("Attachment", fmt.Sprintf("%s (%d bytes)", file.Filename, file.Size))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render message table: %w", err)
	}

	return nil
}
