package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Towerism/nylas-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration persisted to ~/.nylas/config.yml.
type Config struct {
	API          string `json:"api,omitempty"           yaml:"api,omitempty"`
	Token        string `json:"token,omitempty"         yaml:"token,omitempty"`
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	Output       string `json:"output"                  yaml:"output"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage nylas CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigListCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print a single configuration value, resolved from flags, environment, and the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			field, ok := configFieldRef(config, args[0])
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, args[0])
			}

			fmt.Fprintln(os.Stdout, *field)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if key == "output" && !validOutputFormat(value) {
				return constants.ErrInvalidOutputFormat
			}

			config := loadConfig()

			field, ok := configFieldRef(config, key)
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			*field = value

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			// Secrets are confirmed masked.
			if key == "token" || key == "client_secret" {
				value = constants.MaskedSecret
			}

			return outputConfigUpdateResult("Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value and persist the change to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			field, ok := configFieldRef(config, key)
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			*field = ""
			if key == "output" {
				config.Output = constants.FormatTable
			}

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult("Unset", key, "")
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the current configuration",
		Long:  "Display the resolved CLI configuration. Secrets are masked in table output",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return StandardJSONRenderer(os.Stdout, config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(os.Stdout, config)
			default:
				return renderConfigTable(config)
			}
		},
	}
}

// loadConfig reads the resolved configuration out of viper, which has
// already merged flags, environment, and the config file.
func loadConfig() *Config {
	return &Config{
		API:          viper.GetString("api"),
		Token:        viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Output:       viper.GetString("output"),
	}
}

// configFieldRef resolves a settable key to its field. The key set is fixed;
// unknown keys are rejected.
func configFieldRef(config *Config, key string) (*string, bool) {
	switch key {
	case "api":
		return &config.API, true
	case "token":
		return &config.Token, true
	case "client_id":
		return &config.ClientID, true
	case "client_secret":
		return &config.ClientSecret, true
	case "output":
		return &config.Output, true
	}

	return nil, false
}

func validOutputFormat(value string) bool {
	return value == constants.FormatTable || value == constants.FormatJSON || value == constants.FormatYAML
}

// configFilePath returns the file the configuration persists to, creating
// the directory on first use.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".nylas")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfigStruct writes the configuration to the config file as YAML.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func renderConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("API", FormatValue(config.API))
	_ = table.Append("Token", maskSecret(config.Token))
	_ = table.Append("Client ID", FormatValue(config.ClientID))
	_ = table.Append("Client Secret", maskSecret(config.ClientSecret))
	_ = table.Append("Output", FormatValue(config.Output))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render config table: %w", err)
	}

	return nil
}

func maskSecret(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return constants.MaskedSecret
}

// outputConfigUpdateResult reports a configuration change in the requested
// format.
func outputConfigUpdateResult(action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}
	if value != "" {
		result["value"] = value
	}

	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(os.Stdout, result)
	case constants.FormatYAML:
		return StandardYAMLRenderer(os.Stdout, result)
	default:
		if value != "" {
			fmt.Fprintf(os.Stdout, "%s %s = %s\n", action, key, value)
		} else {
			fmt.Fprintf(os.Stdout, "%s %s\n", action, key)
		}

		return nil
	}
}
