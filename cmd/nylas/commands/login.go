package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
	"github.com/Towerism/nylas-go/pkg/nylasclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long: `Verify an account access token against the API and store it in the
config file. The token is prompted for without echo unless --token is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Fprint(os.Stdout, "Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read access token: %w", err)
				}

				fmt.Fprintln(os.Stdout)

				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return constants.ErrAccessTokenRequired
			}

			client, err := nylasclient.New(&nylas.Config{
				BaseURL:     apiEndpoint,
				AccessToken: token,
			})
			if err != nil {
				return fmt.Errorf("failed to create API client: %w", err)
			}

			// Verify the token by fetching the account it belongs to.
			account, err := client.Account().Get(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to verify access token: %w", err)
			}

			config := loadConfig()
			config.Token = token

			if apiEndpoint != "" {
				config.API = apiEndpoint
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", account.EmailAddress, account.Provider)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api-endpoint", "", "API endpoint URL")
	cmd.Flags().StringVar(&token, "access-token", "", "access token (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored access token",
		Long:  "Remove the stored access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Successfully logged out")

			return nil
		},
	}
}
