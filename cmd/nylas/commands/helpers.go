// Package commands implements the nylas CLI command tree.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/Towerism/nylas-go/pkg/nylas"
	"github.com/Towerism/nylas-go/pkg/nylasclient"
	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// timestampFormat is the display format for timestamps in table output.
const timestampFormat = "2006-01-02 15:04"

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](writer io.Writer, data T) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](writer io.Writer, data T) error {
	encoder := yaml.NewEncoder(writer)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// FormatValue returns the value, or a placeholder when it is empty.
func FormatValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// FormatTimestamp renders a timestamp for table output. The zero time
// renders as the placeholder.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(timestampFormat)
}

// Truncate shortens a value for a table cell, marking the cut with an
// ellipsis.
func Truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}

	return value[:limit] + "..."
}

// FormatParticipants renders a participant list as "Name <email>" pairs.
func FormatParticipants(participants []nylas.EmailParticipant) string {
	if len(participants) == 0 {
		return constants.NotAvailable
	}

	parts := make([]string, 0, len(participants))

	for _, p := range participants {
		if p.Name == "" {
			parts = append(parts, p.Email)

			continue
		}

		parts = append(parts, fmt.Sprintf("%s <%s>", p.Name, p.Email))
	}

	return strings.Join(parts, ", ")
}

// clientConfig assembles the client configuration from the resolved
// flag/env/file settings.
func clientConfig() *nylas.Config {
	config := &nylas.Config{
		BaseURL:      viper.GetString("api"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		AccessToken:  viper.GetString("token"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = nylas.NewLogrusLogger(nil)
	}

	return config
}

// createClient builds an API client for account-scoped commands.
func createClient() (nylas.Client, error) {
	if viper.GetString("token") == "" {
		return nil, constants.ErrAccessTokenRequired
	}

	client, err := nylasclient.New(clientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}

// createAdminClient builds an API client for the application-management
// commands, which authenticate with the application's credentials instead of
// an access token.
func createAdminClient() (nylas.Client, error) {
	if viper.GetString("client_id") == "" {
		return nil, constants.ErrClientIDRequired
	}

	if viper.GetString("client_secret") == "" {
		return nil, constants.ErrClientSecretRequired
	}

	client, err := nylasclient.New(clientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}

// listParams builds query params from the shared --limit/--offset flags.
func listParams(limit, offset int) *nylas.QueryParams {
	params := nylas.NewQueryParams()

	if limit > 0 {
		params.WithLimit(limit)
	}

	if offset > 0 {
		params.WithOffset(offset)
	}

	return params
}
