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

// NewDraftsCommand creates the drafts command group.
func NewDraftsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drafts",
		Aliases: []string{"draft"},
		Short:   "Manage drafts",
		Long:    "List, send, and delete the drafts of the connected account",
	}

	cmd.AddCommand(newDraftsListCommand())
	cmd.AddCommand(newDraftsSendCommand())
	cmd.AddCommand(newDraftsDeleteCommand())

	return cmd
}

func newDraftsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		Long:  "List the drafts of the connected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			drafts, err := client.Drafts().List(context.Background(), listParams(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list drafts: %w", err)
			}

			return outputDrafts(drafts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func outputDrafts(drafts []*nylas.Draft) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, drafts)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, drafts)
	default:
		return renderDraftsTable(drafts)
	}
}

func renderDraftsTable(drafts []*nylas.Draft) error {
	if len(drafts) == 0 {
		_, _ = os.Stdout.WriteString("No drafts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "To", "Version")

	for _, draft := range drafts {
		_ = table.Append(draft.ID,
			Truncate(FormatValue(draft.Subject), constants.SubjectDisplayLength),
			FormatParticipants(draft.To),
			strconv.Itoa(draft.Version))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render drafts table: %w", err)
	}

	return nil
}

func newDraftsSendCommand() *cobra.Command {
	var (
		to      []string
		subject string
		body    string
	)

	cmd := &cobra.Command{
		Use:   "send [DRAFT_ID]",
		Short: "Send a draft or a one-off message",
		Long: `Send a saved draft by id, or compose and send a message directly with
--to, --subject, and --body.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var draft *nylas.Draft

			if len(args) == 1 {
				draft, err = client.Drafts().Find(ctx, args[0], nil)
				if err != nil {
					return fmt.Errorf("failed to get draft: %w", err)
				}
			} else {
				if len(to) == 0 {
					return constants.ErrRecipientRequired
				}

				draft = client.Drafts().Build()
				draft.Subject = subject
				draft.Body = body

				for _, email := range to {
					draft.To = append(draft.To, nylas.EmailParticipant{Email: email})
				}
			}

			message, err := client.Drafts().Send(ctx, draft, nil)
			if err != nil {
				return fmt.Errorf("failed to send draft: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Sent %s to %s\n",
				FormatValue(message.Subject), FormatParticipants(message.To))

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient address (repeatable)")
	cmd.Flags().StringVar(&subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&body, "body", "", "message body")

	return cmd
}

func newDraftsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DRAFT_ID",
		Short: "Delete a draft",
		Long:  "Delete a draft. The draft is fetched first because deletion must cite its current version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			draft, err := client.Drafts().Find(ctx, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get draft: %w", err)
			}

			err = client.Drafts().DeleteModel(ctx, draft, nil)
			if err != nil {
				return fmt.Errorf("failed to delete draft: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted draft %s\n", args[0])

			return nil
		},
	}
}
