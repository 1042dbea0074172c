package cli

import (
	"fmt"

	"github.com/jjarrett21/kitchensink/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.kitchensink/config.yaml.

Keys: template, generator, package_manager, base_url_env.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q: expected one of %v", args[0], config.Keys)
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every resolved setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, config.Get(k))
		}
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateConfigFile(cmd)
	},
}

func validateConfigFile(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := config.FilePath()

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("config validation failed: %w", err)
	}
	if result.Valid {
		fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s) in %s:\n", len(result.Issues), path)
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
}
