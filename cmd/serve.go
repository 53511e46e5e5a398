package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nodewee/bizcard/pkg/config"
	"github.com/nodewee/bizcard/pkg/core"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/tool"
	"github.com/nodewee/bizcard/pkg/utils"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server on stdio",
	Long: `Run a Model Context Protocol server on standard input and output.

The server offers one tool, parse_business_card, which takes the text of a
card and returns the contact's name, phone number and email address.
Logs go to stderr or --log-file, never to stdout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			if appErr, ok := err.(*utils.AppError); ok {
				log.Fatalf("Error (%s): %s", appErr.Type, appErr.Message)
			} else {
				log.Fatalf("Error: %v", err)
			}
		}
	},
}

func runServer() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var l *logger.Logger
	if cfg.LogFile != "" {
		l = logger.NewFileLogger(cfg.LogFile, cfg.LogLevel, false)
	} else {
		l = logger.NewLogger(cfg.LogLevel, false)
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l.Debug("Starting MCP server %s", version)
	server := tool.NewServer(core.NewParserFactory(l), version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return utils.WrapError(err, utils.ErrorTypeSystem, "MCP server stopped")
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.AddCommand(serveCmd)
}
