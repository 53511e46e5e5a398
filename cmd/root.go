package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/nodewee/bizcard/pkg/config"
	"github.com/nodewee/bizcard/pkg/core"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/ocr"
	"github.com/nodewee/bizcard/pkg/output"
	"github.com/nodewee/bizcard/pkg/utils"

	"github.com/spf13/cobra"
)

// stdinSource labels results read from standard input
const stdinSource = "stdin"

var (
	outputPath   string
	parserName   string
	outputFormat string
	configFile   string
	logLevel     string
	logFile      string
	verbose      bool
	showVersion  bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config    *config.Config
	logger    *logger.Logger
	engine    interfaces.OCREngine
	processor *core.DefaultFileProcessor
	stdout    io.Writer
}

// NewAppHandler creates an application handler
func NewAppHandler(stdout io.Writer) *AppHandler {
	return &AppHandler{stdout: stdout}
}

// ProcessFile parses one card file and prints the contact details
func (h *AppHandler) ProcessFile(ctx context.Context, inputFile string) error {
	if err := h.initialize(); err != nil {
		return err
	}
	defer h.close()

	absPath, err := filepath.Abs(inputFile)
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "error resolving file path")
	}

	outputFilePath := ""
	if outputPath != "" {
		if outputFilePath, err = filepath.Abs(outputPath); err != nil {
			return utils.WrapError(err, utils.ErrorTypeValidation, "error resolving output path")
		}
	}

	result, err := h.processor.ProcessFile(ctx, absPath, outputFilePath)
	if err != nil {
		return err
	}

	return h.displayResults(result)
}

// ProcessReader parses card text read from r, e.g. standard input
func (h *AppHandler) ProcessReader(r io.Reader) error {
	if err := h.initialize(); err != nil {
		return err
	}
	defer h.close()

	data, err := io.ReadAll(r)
	if err != nil {
		return utils.NewIOError("failed to read standard input", err)
	}

	result := h.processor.ProcessText(stdinSource, string(data))

	if outputPath != "" {
		if err := output.WriteFile(outputPath, result.Contact, h.config.OutputFormat); err != nil {
			return err
		}
		result.OutputFile = outputPath
		h.logger.Progress("💾", "Result saved to: %s", outputPath)
	}

	return h.displayResults(result)
}

// initialize loads configuration and creates components
func (h *AppHandler) initialize() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	h.config = cfg

	if err := h.applyCommandLineOverrides(); err != nil {
		return err
	}

	if err := h.config.Validate(); err != nil {
		return err
	}

	if h.config.LogFile != "" {
		h.logger = logger.NewFileLogger(h.config.LogFile, h.config.LogLevel, h.config.EnableVerbose)
	} else {
		h.logger = logger.NewLogger(h.config.LogLevel, h.config.EnableVerbose)
	}
	if h.config.Source != "" {
		h.logger.Debug("Loaded configuration from %s", h.config.Source)
	}
	h.logger.Debug("Effective configuration: %s", h.config)

	p, err := core.NewParserFactory(h.logger).Create(h.config.ParserType)
	if err != nil {
		return err
	}

	// Images are rejected later if no OCR engine is available
	if client, err := ocr.New(h.config.OCRLanguage); err != nil {
		h.logger.Debug("OCR unavailable: %v", err)
	} else {
		h.engine = client
	}

	h.processor = core.NewFileProcessor(h.config, p, h.engine, h.logger)
	return nil
}

// applyCommandLineOverrides applies command line parameter overrides
func (h *AppHandler) applyCommandLineOverrides() error {
	if parserName != "" {
		h.config.ParserType = parserName
	}

	if outputFormat != "" {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		h.config.OutputFormat = format
	}

	if logLevel != "" {
		h.config.LogLevel = logLevel
	}

	if logFile != "" {
		h.config.LogFile = logFile
	}

	if verbose {
		h.config.EnableVerbose = true
	}

	return nil
}

// displayResults prints the rendering to stdout and a summary to the log
func (h *AppHandler) displayResults(result *interfaces.ExtractionResult) error {
	rendered, err := output.Render(result.Contact, h.config.OutputFormat)
	if err != nil {
		return err
	}
	if _, err := h.stdout.Write(rendered); err != nil {
		return utils.NewIOError("failed to write result", err)
	}

	h.logger.Progress("📊", "Parser used: %s", result.ParserUsed)
	if result.LoaderUsed != "" {
		h.logger.Progress("📄", "Loader used: %s", result.LoaderUsed)
	}
	if result.FallbackUsed {
		h.logger.Progress("⚠️", "Fallback loading was used, attempted: %v", result.AttemptedLoaders)
	}
	h.logger.Progress("⏱️", "Processing time: %dms", result.ProcessTime)

	return nil
}

// close releases the OCR engine and the log file
func (h *AppHandler) close() {
	if h.engine != nil {
		if err := h.engine.Close(); err != nil {
			h.logger.Warn("Failed to release OCR engine: %v", err)
		}
	}
	h.logger.Close()
}

// stdinIsPiped reports whether standard input is a pipe or file
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bizcard [input_file]",
	Short: "Extract contact details from business card text",
	Long: `A CLI tool that reads the OCR text of a business card and extracts the
contact's name, phone number and email address.

Input:
- Plain text files, one card line per line
- HTML and hOCR files (tesseract --hocr output)
- Images, when built with OCR support (go build -tags ocr)
- Standard input, when no file is given and input is piped

Output:
- text: Name, Phone and Email lines, the default
- json / yaml: structured records, absent fields are null

Parsers:
- default: statistical named-entity tagger
- rules: lightweight capitalised-line heuristic

Configuration is read from --config, ./bizcard.yaml or ~/.bizcard/config.yaml,
then BIZCARD_* environment variables, then command line flags.

Examples:
  bizcard card.txt                          # Parse a card and print the contact
  bizcard card.txt -o contact.txt           # Also write the result to a file
  bizcard card.hocr --format json           # Parse tesseract hOCR output, print JSON
  bizcard card.png -v                       # OCR an image with progress output
  bizcard card.txt --parser rules           # Use the rule-based parser
  cat card.txt | bizcard --format yaml      # Read the card from standard input`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Handle version flag
		if showVersion {
			fmt.Printf("bizcard %s\n", version)
			return
		}

		handler := NewAppHandler(cmd.OutOrStdout())

		var err error
		switch {
		case len(args) == 1 && args[0] != "-":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err = handler.ProcessFile(ctx, args[0])
			stop()
		case len(args) == 1 || stdinIsPiped():
			err = handler.ProcessReader(os.Stdin)
		default:
			cmd.Help()
			return
		}

		if err != nil {
			if appErr, ok := err.(*utils.AppError); ok {
				log.Fatalf("Error (%s): %s", appErr.Type, appErr.Message)
			} else {
				log.Fatalf("Error: %v", err)
			}
		}
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Also write the result to this file")
	rootCmd.Flags().StringVar(&parserName, "parser", "",
		"Parser to use (default, rules). Unknown names fall back to default")
	rootCmd.Flags().StringVar(&outputFormat, "format", "",
		"Output format (text, json, yaml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "",
		"Write logs to this file instead of stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")

	// Shared with the config and serve subcommands
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file (default: ./bizcard.yaml, then ~/.bizcard/config.yaml)")
}
