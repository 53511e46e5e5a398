package cmd

import (
	"fmt"

	"github.com/nodewee/bizcard/pkg/config"
	"github.com/nodewee/bizcard/pkg/core"
	"github.com/nodewee/bizcard/pkg/logger"

	"github.com/spf13/cobra"
)

// parsersCmd represents the parsers command
var parsersCmd = &cobra.Command{
	Use:   "parsers",
	Short: "List available parsers",
	Run: func(cmd *cobra.Command, args []string) {
		current := config.DefaultParserType
		if cfg, err := config.Load(configFile); err == nil {
			current = cfg.ParserType
		}

		fmt.Println("🧩 Available parsers:")
		for _, name := range core.NewParserFactory(logger.Discard()).List() {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, name)
		}
		fmt.Println("\n💡 Tip: Use --parser <name> or 'bizcard config set parser.type <name>'")
	},
}

func init() {
	rootCmd.AddCommand(parsersCmd)
}
