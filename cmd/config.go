package cmd

import (
	"fmt"

	"github.com/nodewee/bizcard/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage configuration settings.

Configuration is stored in a YAML file in your home directory (~/.bizcard/config.yaml),
or in the file given by --config. Values shown by list and get include
BIZCARD_* environment overrides.

Available commands:
  list  - List all settings
  get   - Get a specific setting
  set   - Set a specific setting

Examples:
  bizcard config list                          # List all settings
  bizcard config get parser.type               # Get the parser
  bizcard config set parser.type rules         # Use the rule-based parser by default
  bizcard config set output.format json        # Print JSON by default`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "list":
			listConfig()
		case "get":
			if len(args) < 2 {
				fmt.Println("Error: 'get' command requires a key name")
				fmt.Println("Usage: bizcard config get <key>")
				return
			}
			getConfig(args[1])
		case "set":
			if len(args) < 3 {
				fmt.Println("Error: 'set' command requires a key and value")
				fmt.Println("Usage: bizcard config set <key> <value>")
				return
			}
			setConfig(args[1], args[2])
		default:
			fmt.Printf("Error: Unknown config command '%s'\n", args[0])
			fmt.Println("Available commands: list, get, set")
		}
	},
}

// listConfig lists all configuration settings
func listConfig() {
	fmt.Println("🛠️  Configuration")
	fmt.Println("=================")

	source := config.ResolveConfigFile(configFile)
	fmt.Printf("📁 Config file: %s\n\n", getDisplayValue(source))

	for _, key := range config.ListConfigKeys() {
		value, err := config.GetConfigValue(configFile, key)
		if err != nil {
			fmt.Printf("❌ Error loading configuration: %v\n", err)
			return
		}
		fmt.Printf("  %-20s = %s\n", key, getDisplayValue(value))
	}

	fmt.Println("\n💡 Tip: Use 'bizcard config get <key>' to get specific values")
	fmt.Println("💡 Tip: Use 'bizcard config set <key> <value>' to change a setting")
}

// getConfig gets a specific configuration value
func getConfig(key string) {
	value, err := config.GetConfigValue(configFile, key)
	if err != nil {
		fmt.Printf("❌ Error getting config value '%s': %v\n", key, err)
		return
	}

	fmt.Printf("📝 %s = %s\n", key, getDisplayValue(value))
}

// setConfig sets a specific configuration value
func setConfig(key, value string) {
	if err := config.SetConfigValue(configFile, key, value); err != nil {
		fmt.Printf("❌ Error setting config value '%s': %v\n", key, err)
		return
	}

	fmt.Printf("✅ Successfully set %s = %v\n", key, value)
}

// getDisplayValue returns a display-friendly value for empty strings
func getDisplayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// configListCmd represents the 'config list' command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Run: func(cmd *cobra.Command, args []string) {
		listConfig()
	},
}

// configGetCmd represents the 'config get' command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		getConfig(args[0])
	},
}

// configSetCmd represents the 'config set' command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setConfig(args[0], args[1])
	},
}

func init() {
	// Add config command to root
	rootCmd.AddCommand(configCmd)

	// Add subcommands to config
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
