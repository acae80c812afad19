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

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the connected account",
		Long:  "Display information about the account the access token belongs to",
	}

	cmd.AddCommand(newAccountShowCommand())

	return cmd
}

func newAccountShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the connected account",
		Long:  "Display the account the access token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Account().Get(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return outputAccountDetails(account)
		},
	}
}

func outputAccountDetails(account *nylas.Account) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, account)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, account)
	default:
		return renderAccountDetailsTable(account)
	}
}

func renderAccountDetailsTable(account *nylas.Account) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", account.ID)
	_ = table.Append("Name", FormatValue(account.Name))
	_ = table.Append("Email", FormatValue(account.EmailAddress))
	_ = table.Append("Provider", FormatValue(account.Provider))
	_ = table.Append("Organization Unit", FormatValue(account.OrganizationUnit))
	_ = table.Append("Sync State", FormatValue(account.SyncState))
	_ = table.Append("Linked At", FormatTimestamp(account.LinkedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render account table: %w", err)
	}

	return nil
}
