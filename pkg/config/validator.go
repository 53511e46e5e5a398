package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// ConfigValidator checks a Config and reports every problem at once
type ConfigValidator struct{}

// NewConfigValidator creates a config validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate validates the configuration
func (v *ConfigValidator) Validate(c *Config) error {
	var errors []string

	if strings.TrimSpace(c.ParserType) == "" {
		errors = append(errors, "parser type must not be empty")
	}

	if err := v.validateOutputFormat(c.OutputFormat); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateNumericValues(c); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if strings.TrimSpace(c.OCRLanguage) == "" {
		errors = append(errors, "OCR language must not be empty")
	}

	if len(errors) > 0 {
		return utils.NewValidationError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errors, "; ")))
	}

	return nil
}

// validateOutputFormat checks the result serialisation
func (v *ConfigValidator) validateOutputFormat(format types.OutputFormat) error {
	validFormats := []types.OutputFormat{
		types.OutputFormatText,
		types.OutputFormatJSON,
		types.OutputFormatYAML,
	}

	if slices.Contains(validFormats, format) {
		return nil
	}

	return fmt.Errorf("invalid output format: %s", format)
}

// validateNumericValues checks limits and timeouts
func (v *ConfigValidator) validateNumericValues(c *Config) error {
	if c.TimeoutMinutes < 1 {
		return fmt.Errorf("timeout must be at least 1 minute")
	}
	if c.MaxInputSizeMB < 1 {
		return fmt.Errorf("max input size must be at least 1 MB")
	}
	if c.MaxFileSize() > constants.MaxFileSize {
		return fmt.Errorf("max input size should not exceed %d MB", constants.MaxFileSize/(1024*1024))
	}

	return nil
}

// validateLogLevel checks the log level name
func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	if slices.Contains(validLevels, strings.ToLower(level)) {
		return nil
	}

	return fmt.Errorf("invalid log level: %s", level)
}
