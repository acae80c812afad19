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

// NewAdminCommand creates the admin command group. Every subcommand
// authenticates with the application's client id and secret rather than an
// account access token.
func NewAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the application's connected accounts",
		Long:  "Application-level operations: connected accounts, billing state, and token hygiene",
	}

	cmd.AddCommand(newAdminAccountsCommand())
	cmd.AddCommand(newAdminIPsCommand())

	return cmd
}

func newAdminAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage connected accounts",
		Long:    "List, inspect, and manage the accounts connected to the application",
	}

	cmd.AddCommand(newAdminAccountsListCommand())
	cmd.AddCommand(newAdminAccountsGetCommand())
	cmd.AddCommand(newAdminAccountsDowngradeCommand())
	cmd.AddCommand(newAdminAccountsUpgradeCommand())
	cmd.AddCommand(newAdminAccountsRevokeAllCommand())
	cmd.AddCommand(newAdminAccountsTokenInfoCommand())

	return cmd
}

func newAdminAccountsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected accounts",
		Long:  "List the accounts connected to the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			accounts, err := client.ManagementAccounts().List(context.Background(), listParams(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return outputManagementAccounts(accounts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func outputManagementAccounts(accounts []*nylas.ManagementAccount) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, accounts)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, accounts)
	default:
		return renderManagementAccountsTable(accounts)
	}
}

func renderManagementAccountsTable(accounts []*nylas.ManagementAccount) error {
	if len(accounts) == 0 {
		_, _ = os.Stdout.WriteString("No accounts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Provider", "Billing State", "Sync State", "Trial")

	for _, account := range accounts {
		_ = table.Append(account.ID,
			FormatValue(account.Email),
			FormatValue(account.Provider),
			FormatValue(account.BillingState),
			FormatValue(account.SyncState),
			strconv.FormatBool(account.Trial))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render accounts table: %w", err)
	}

	return nil
}

func newAdminAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get connected account details",
		Long:  "Display detailed information about one connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			account, err := client.ManagementAccounts().Find(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return outputManagementAccountDetails(account)
		},
	}
}

func outputManagementAccountDetails(account *nylas.ManagementAccount) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, account)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, account)
	default:
		return renderManagementAccountDetailsTable(account)
	}
}

func renderManagementAccountDetailsTable(account *nylas.ManagementAccount) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", account.ID)
	_ = table.Append("Email", FormatValue(account.Email))
	_ = table.Append("Provider", FormatValue(account.Provider))
	_ = table.Append("Billing State", FormatValue(account.BillingState))
	_ = table.Append("Sync State", FormatValue(account.SyncState))
	_ = table.Append("Trial", strconv.FormatBool(account.Trial))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render account table: %w", err)
	}

	return nil
}

func newAdminAccountsDowngradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "downgrade ACCOUNT_ID",
		Short: "Downgrade a connected account",
		Long:  "Move a connected account to the free tier and stop syncing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			err = client.ManagementAccounts().Downgrade(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to downgrade account: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Downgraded account %s\n", args[0])

			return nil
		},
	}
}

func newAdminAccountsUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade ACCOUNT_ID",
		Short: "Upgrade a connected account",
		Long:  "Move a connected account back to the paid tier and resume syncing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			err = client.ManagementAccounts().Upgrade(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upgrade account: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Upgraded account %s\n", args[0])

			return nil
		},
	}
}

func newAdminAccountsRevokeAllCommand() *cobra.Command {
	var keepToken string

	cmd := &cobra.Command{
		Use:   "revoke-all ACCOUNT_ID",
		Short: "Revoke all tokens of a connected account",
		Long:  "Invalidate every access token issued for a connected account, optionally keeping one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			err = client.ManagementAccounts().RevokeAllTokens(context.Background(), args[0], keepToken)
			if err != nil {
				return fmt.Errorf("failed to revoke tokens: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Revoked all tokens for account %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&keepToken, "keep-token", "", "access token to keep valid")

	return cmd
}

func newAdminAccountsTokenInfoCommand() *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   "token-info ACCOUNT_ID",
		Short: "Inspect an access token",
		Long:  "Display the scopes and state of one of a connected account's access tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if accessToken == "" {
				return constants.ErrInspectTokenRequired
			}

			client, err := createAdminClient()
			if err != nil {
				return err
			}

			info, err := client.ManagementAccounts().TokenInfo(context.Background(), args[0], accessToken)
			if err != nil {
				return fmt.Errorf("failed to get token info: %w", err)
			}

			return outputTokenInfo(info)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "access token to inspect")

	return cmd
}

func outputTokenInfo(info *nylas.AccessTokenInfo) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, info)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, info)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("Scopes", FormatValue(info.Scopes))
		_ = table.Append("State", FormatValue(info.State))
		_ = table.Append("Created", FormatTimestamp(info.CreatedAt))
		_ = table.Append("Updated", FormatTimestamp(info.UpdatedAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render token info table: %w", err)
		}

		return nil
	}
}

func newAdminIPsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ips",
		Short: "List outbound IP addresses",
		Long:  "List the source addresses the platform calls out from for this application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAdminClient()
			if err != nil {
				return err
			}

			ips, err := client.ManagementAccounts().IPAddresses(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list IP addresses: %w", err)
			}

			return outputIPAddresses(ips)
		},
	}
}

func outputIPAddresses(ips *nylas.IPAddresses) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, ips)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, ips)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("IP Address")

		for _, addr := range ips.Addresses {
			_ = table.Append(addr)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render IP addresses table: %w", err)
		}

		return nil
	}
}
