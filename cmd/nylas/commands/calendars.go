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

// NewCalendarsCommand creates the calendars command group.
func NewCalendarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendars",
		Aliases: []string{"calendar", "cal"},
		Short:   "Manage calendars",
		Long:    "List and inspect the calendars of the connected account",
	}

	cmd.AddCommand(newCalendarsListCommand())
	cmd.AddCommand(newCalendarsGetCommand())

	return cmd
}

func newCalendarsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendars",
		Long:  "List the calendars of the connected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			calendars, err := client.Calendars().List(context.Background(), listParams(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list calendars: %w", err)
			}

			return outputCalendars(calendars)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func outputCalendars(calendars []*nylas.Calendar) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, calendars)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, calendars)
	default:
		return renderCalendarsTable(calendars)
	}
}

func renderCalendarsTable(calendars []*nylas.Calendar) error {
	if len(calendars) == 0 {
		_, _ = os.Stdout.WriteString("No calendars found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Description", "Timezone", "Read Only", "Primary")

	for _, calendar := range calendars {
		_ = table.Append(calendar.ID, calendar.Name,
			FormatValue(calendar.Description),
			FormatValue(calendar.Timezone),
			strconv.FormatBool(calendar.ReadOnly),
			strconv.FormatBool(calendar.IsPrimary))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render calendars table: %w", err)
	}

	return nil
}

func newCalendarsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CALENDAR_ID",
		Short: "Get calendar details",
		Long:  "Display detailed information about a specific calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			calendar, err := client.Calendars().Find(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get calendar: %w", err)
			}

			return outputCalendarDetails(calendar)
		},
	}
}

func outputCalendarDetails(calendar *nylas.Calendar) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, calendar)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, calendar)
	default:
		return renderCalendarDetailsTable(calendar)
	}
}

func renderCalendarDetailsTable(calendar *nylas.Calendar) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", calendar.ID)
	_ = table.Append("Name", calendar.Name)
	_ = table.Append("Description", FormatValue(calendar.Description))
	_ = table.Append("Location", FormatValue(calendar.Location))
	_ = table.Append("Timezone", FormatValue(calendar.Timezone))
	_ = table.Append("Account", FormatValue(calendar.AccountID))
	_ = table.Append("Read Only", strconv.FormatBool(calendar.ReadOnly))
	_ = table.Append("Primary", strconv.FormatBool(calendar.IsPrimary))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render calendar table: %w", err)
	}

	return nil
}
