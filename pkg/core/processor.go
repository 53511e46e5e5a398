package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nodewee/bizcard/pkg/config"
	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/output"
	"github.com/nodewee/bizcard/pkg/providers"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

var _ interfaces.FileProcessor = (*DefaultFileProcessor)(nil)

// DefaultFileProcessor implements FileProcessor: it loads a card file,
// parses it and optionally saves the rendering
type DefaultFileProcessor struct {
	config  *config.Config
	logger  *logger.Logger
	factory interfaces.LoaderFactory
	parser  interfaces.BusinessCardParser
}

// NewFileProcessor creates a new file processor
func NewFileProcessor(cfg *config.Config, p interfaces.BusinessCardParser, engine interfaces.OCREngine, log *logger.Logger) *DefaultFileProcessor {
	log.Debug("File processor using parser %q, output format %s", p.Name(), cfg.OutputFormat)

	return &DefaultFileProcessor{
		config:  cfg,
		logger:  log,
		factory: NewLoaderFactory(engine, log),
		parser:  p,
	}
}

// ProcessFile parses one card file. Load failures are returned as errors
// and no extraction is attempted; missing fields are not errors.
func (p *DefaultFileProcessor) ProcessFile(ctx context.Context, inputFile, outputFile string) (*interfaces.ExtractionResult, error) {
	startTime := time.Now()
	runID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout())
	defer cancel()

	p.logger.Info("=== Starting card processing (run %s) ===", runID)
	p.logger.Info("Input file: %s", inputFile)

	// Validate input file
	if err := p.validateInputFile(inputFile); err != nil {
		return nil, err
	}

	// Get file information with retry
	var fileInfo *types.FileInfo
	err := utils.WithRetry(func() error {
		info, infoErr := utils.GetFileInfo(inputFile)
		if infoErr != nil {
			return utils.WrapError(infoErr, utils.ErrorTypeIO, "failed to get file info")
		}
		fileInfo = info
		return nil
	}, constants.DefaultMaxRetries)
	if err != nil {
		p.logger.Error("Failed to get file information: %v", err)
		return nil, err
	}

	p.logger.Info("File analysis completed:")
	p.logger.Info("  Extension: %s", fileInfo.Extension)
	p.logger.Info("  MIME type: %s", fileInfo.MimeType)
	p.logger.Info("  Size: %d bytes", fileInfo.Size)
	p.logger.Info("  MD5 hash: %s", fileInfo.MD5Hash)
	p.logger.Info("  Media type: %s", fileInfo.MediaType)

	// Check file size limits
	if err := p.validateFileSize(fileInfo.Size); err != nil {
		return nil, err
	}

	loaders, err := p.factory.CreateLoaderWithFallbacks(fileInfo)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeUnsupported, "no suitable loader found")
	}

	result, text, err := p.attemptLoadWithFallbacks(ctx, inputFile, loaders)
	if err != nil {
		return result, err
	}

	result.RunID = runID
	p.parse(result, text)

	// Save to output file if specified
	if outputFile != "" {
		if err := p.saveResult(result.Contact, outputFile); err != nil {
			result.Error = err.Error()
			return result, err
		}
		result.OutputFile = outputFile
		p.logger.Progress("💾", "Result saved to: %s", outputFile)
	}

	result.ProcessTime = time.Since(startTime).Milliseconds()
	p.logger.Progress("✅", "Card parsed in %dms", result.ProcessTime)
	p.logger.Info("=== Card processing completed ===")

	return result, nil
}

// ProcessText parses card text that did not come from a file, such as
// standard input. source labels the result.
func (p *DefaultFileProcessor) ProcessText(source, text string) *interfaces.ExtractionResult {
	startTime := time.Now()

	result := &interfaces.ExtractionResult{
		RunID:  uuid.NewString(),
		Source: source,
	}
	p.parse(result, text)
	result.ProcessTime = time.Since(startTime).Milliseconds()

	return result
}

// parse normalises text and runs the parser, filling in result
func (p *DefaultFileProcessor) parse(result *interfaces.ExtractionResult, text string) {
	text = providers.NormalizeText(text)

	result.Contact = p.parser.GetContactInfo(text)
	result.ParserUsed = p.parser.Name()
	result.TextLength = len(text)

	if result.Contact.IsEmpty() {
		p.logger.Warn("No contact fields found in %s", result.Source)
	}
}

// validateInputFile validates the input file
func (p *DefaultFileProcessor) validateInputFile(inputFile string) error {
	if inputFile == "" {
		return utils.NewValidationError("input file path cannot be empty", nil)
	}

	info, err := os.Stat(inputFile)
	if os.IsNotExist(err) {
		return utils.NewNotFoundError(fmt.Sprintf("input file not found: %s", inputFile), err)
	}
	if err != nil {
		return utils.NewInputError(fmt.Sprintf("cannot access input file: %s", inputFile), err)
	}
	if info.IsDir() {
		return utils.NewInputError(fmt.Sprintf("input is a directory: %s", inputFile), nil)
	}

	// Check if file is readable
	file, err := os.Open(inputFile)
	if err != nil {
		return utils.NewPermissionError(fmt.Sprintf("cannot read input file: %s", inputFile), err)
	}
	file.Close()

	return nil
}

// validateFileSize validates that the file size is within acceptable limits
func (p *DefaultFileProcessor) validateFileSize(size int64) error {
	limit := p.config.MaxFileSize()
	if size > limit {
		return utils.NewValidationError(
			fmt.Sprintf("file size (%d bytes) exceeds maximum limit (%d bytes)", size, limit), nil)
	}

	if size > constants.WarnFileSizeLimit {
		p.logger.Warn("Large file detected (%d bytes), processing may take longer", size)
	}

	return nil
}

// attemptLoadWithFallbacks tries each loader in turn and returns the text of
// the first that succeeds
func (p *DefaultFileProcessor) attemptLoadWithFallbacks(ctx context.Context, inputFile string, loaders []interfaces.DocumentLoader) (*interfaces.ExtractionResult, string, error) {
	result := &interfaces.ExtractionResult{Source: inputFile}
	var lastError error

	for i, loader := range loaders {
		loaderName := loader.Name()
		result.AttemptedLoaders = append(result.AttemptedLoaders, loaderName)

		p.logger.Progress("🔍", "Loading with %s (attempt %d/%d)", loaderName, i+1, len(loaders))

		if i > 0 {
			result.FallbackUsed = true
			p.logger.Warn("Primary loader failed, trying fallback: %s", loaderName)
		}

		var text string
		err := utils.WithRetry(func() error {
			loaded, loadErr := loader.Load(ctx, inputFile)
			if loadErr != nil {
				return utils.WrapError(loadErr, "", fmt.Sprintf("loader '%s' failed", loaderName))
			}
			text = loaded
			return nil
		}, constants.DefaultMaxRetries)

		if err != nil {
			p.logger.Warn("Loader '%s' failed: %v", loaderName, err)
			lastError = err

			// A cancelled or expired context fails every remaining loader too
			if ctx.Err() != nil {
				break
			}
			continue
		}

		result.LoaderUsed = loaderName
		p.logger.Info("Loaded %d characters with %s", len(text), loaderName)
		return result, text, nil
	}

	p.logger.Error("All loaders failed. Last error: %v", lastError)
	result.Error = fmt.Sprintf("all loaders failed, last error: %v", lastError)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, "", utils.WrapError(ctxErr, utils.ErrorTypeTimeout, fmt.Sprintf("loading %s was interrupted", inputFile))
	}
	return result, "", utils.NewInputError(fmt.Sprintf("cannot load %s", inputFile), lastError)
}

// saveResult writes the rendering in the configured format, with retry
func (p *DefaultFileProcessor) saveResult(info types.ContactInfo, outputFile string) error {
	return utils.WithRetry(func() error {
		return output.WriteFile(outputFile, info, p.config.OutputFormat)
	}, constants.DefaultMaxRetries)
}

// SetLoaderFactory sets the loader factory to use
func (p *DefaultFileProcessor) SetLoaderFactory(factory interfaces.LoaderFactory) {
	p.factory = factory
	p.logger.Debug("Loader factory updated")
}
