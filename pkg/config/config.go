package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// Configuration keys
const (
	KeyParserType     = "parser.type"
	KeyOutputFormat   = "output.format"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLogVerbose     = "log.verbose"
	KeyOCRLanguage    = "ocr.language"
	KeyTimeoutMinutes = "timeout.minutes"
	KeyMaxInputSizeMB = "input.max_size_mb"

	// LegacyKeyParserType is the parser selector used by older
	// config.properties files
	LegacyKeyParserType = "businesscardparser.type"

	// EnvPrefix prefixes environment overrides, e.g. BIZCARD_PARSER_TYPE
	EnvPrefix = "BIZCARD"
)

// Default values
const (
	DefaultParserType     = constants.DefaultParserName
	DefaultOutputFormat   = types.OutputFormatText
	DefaultLogLevel       = "warn"
	DefaultLogFile        = ""
	DefaultEnableVerbose  = false
	DefaultOCRLanguage    = "eng"
	DefaultTimeoutMinutes = 5
	DefaultMaxInputSizeMB = 10
)

// Config holds application configuration
type Config struct {
	ParserType     string
	OutputFormat   types.OutputFormat
	LogLevel       string
	LogFile        string
	EnableVerbose  bool
	OCRLanguage    string
	TimeoutMinutes int
	MaxInputSizeMB int

	// Source is the config file that was read, empty when none was found
	Source string
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		ParserType:     DefaultParserType,
		OutputFormat:   DefaultOutputFormat,
		LogLevel:       DefaultLogLevel,
		LogFile:        DefaultLogFile,
		EnableVerbose:  DefaultEnableVerbose,
		OCRLanguage:    DefaultOCRLanguage,
		TimeoutMinutes: DefaultTimeoutMinutes,
		MaxInputSizeMB: DefaultMaxInputSizeMB,
	}
}

// Load builds the configuration from defaults, the config file and
// BIZCARD_* environment variables, in increasing precedence. configFile
// may be empty, in which case the standard locations are searched.
func Load(configFile string) (*Config, error) {
	v, source, err := newViper(ResolveConfigFile(configFile), true)
	if err != nil {
		return nil, err
	}

	cfg := fromViper(v)
	cfg.Source = source
	return cfg, nil
}

// newViper creates a viper instance with defaults registered and, when path
// is non-empty, the file read in
func newViper(path string, withEnv bool) (*viper.Viper, string, error) {
	v := viper.New()
	setDefaults(v)

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}

	if path == "" {
		return v, "", nil
	}

	if isPropertiesFile(path) {
		settings, err := readProperties(path)
		if err != nil {
			return nil, "", utils.NewConfigurationError(fmt.Sprintf("failed to read config file %s", path), err)
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return nil, "", utils.NewConfigurationError(fmt.Sprintf("failed to merge config file %s", path), err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", utils.NewConfigurationError(fmt.Sprintf("failed to read config file %s", path), err)
		}
	}

	// Older property files select the parser under a different key
	if !v.InConfig(KeyParserType) && v.IsSet(LegacyKeyParserType) {
		v.SetDefault(KeyParserType, v.GetString(LegacyKeyParserType))
	}

	return v, path, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault(KeyParserType, defaults.ParserType)
	v.SetDefault(KeyOutputFormat, string(defaults.OutputFormat))
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogFile, defaults.LogFile)
	v.SetDefault(KeyLogVerbose, defaults.EnableVerbose)
	v.SetDefault(KeyOCRLanguage, defaults.OCRLanguage)
	v.SetDefault(KeyTimeoutMinutes, defaults.TimeoutMinutes)
	v.SetDefault(KeyMaxInputSizeMB, defaults.MaxInputSizeMB)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ParserType:     strings.TrimSpace(v.GetString(KeyParserType)),
		OutputFormat:   types.OutputFormat(strings.ToLower(strings.TrimSpace(v.GetString(KeyOutputFormat)))),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFile:        v.GetString(KeyLogFile),
		EnableVerbose:  v.GetBool(KeyLogVerbose),
		OCRLanguage:    v.GetString(KeyOCRLanguage),
		TimeoutMinutes: v.GetInt(KeyTimeoutMinutes),
		MaxInputSizeMB: v.GetInt(KeyMaxInputSizeMB),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validator := NewConfigValidator()
	return validator.Validate(c)
}

// Timeout returns the processing deadline
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

// MaxFileSize returns the input size limit in bytes
func (c *Config) MaxFileSize() int64 {
	return int64(c.MaxInputSizeMB) * 1024 * 1024
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Parser: %s, Format: %s, LogLevel: %s, Verbose: %v}",
		c.ParserType, c.OutputFormat, c.LogLevel, c.EnableVerbose)
}
