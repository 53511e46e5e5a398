package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// isolate points HOME and the working directory at empty temp dirs so that
// no real config file is picked up
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.Source)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "custom.yaml"), `
parser:
  type: rules
output:
  format: json
timeout:
  minutes: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rules", cfg.ParserType)
	assert.Equal(t, types.OutputFormatJSON, cfg.OutputFormat)
	assert.Equal(t, 2, cfg.TimeoutMinutes)
	assert.Equal(t, DefaultOCRLanguage, cfg.OCRLanguage)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_SearchOrder(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, AppDirName, ConfigFileName), "parser:\n  type: from-home\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-home", cfg.ParserType)

	writeFile(t, LocalConfigFile, "parser:\n  type: from-cwd\n")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-cwd", cfg.ParserType)
	assert.Equal(t, LocalConfigFile, cfg.Source)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "parser:\n  type: rules\n")
	t.Setenv("BIZCARD_PARSER_TYPE", "default")
	t.Setenv("BIZCARD_LOG_VERBOSE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.ParserType)
	assert.True(t, cfg.EnableVerbose)
}

func TestLoad_LegacyPropertiesKey(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.properties"), "businesscardparser.type=rules\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rules", cfg.ParserType)
}

func TestLoad_NewKeyWinsOverLegacy(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), `
businesscardparser:
  type: legacy
parser:
  type: rules
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rules", cfg.ParserType)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeConfiguration, utils.GetErrorType(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "bad format", mutate: func(c *Config) { c.OutputFormat = "xml" }, errMsg: "invalid output format"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, errMsg: "invalid log level"},
		{name: "zero timeout", mutate: func(c *Config) { c.TimeoutMinutes = 0 }, errMsg: "timeout"},
		{name: "huge input", mutate: func(c *Config) { c.MaxInputSizeMB = 500 }, errMsg: "max input size"},
		{name: "empty parser", mutate: func(c *Config) { c.ParserType = " " }, errMsg: "parser type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSetAndGetConfigValue(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, SetConfigValue(path, KeyParserType, "rules"))
	require.NoError(t, SetConfigValue(path, KeyOutputFormat, "yaml"))

	value, err := GetConfigValue(path, KeyParserType)
	require.NoError(t, err)
	assert.Equal(t, "rules", value)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.OutputFormatYAML, cfg.OutputFormat)
}

func TestSetConfigValue_Rejects(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	assert.Error(t, SetConfigValue(path, "no.such.key", "x"))
	assert.Error(t, SetConfigValue(path, KeyOutputFormat, "xml"))
	assert.NoFileExists(t, path)
}

func TestSetConfigValue_DefaultsToUserFile(t *testing.T) {
	home := isolate(t)

	require.NoError(t, SetConfigValue("", KeyLogLevel, "debug"))
	assert.FileExists(t, filepath.Join(home, AppDirName, ConfigFileName))
}

func TestSetConfigValue_UpdatesLocalFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, LocalConfigFile, "output:\n  format: json\n")

	require.NoError(t, SetConfigValue("", KeyParserType, "rules"))
	assert.NoFileExists(t, filepath.Join(home, AppDirName, ConfigFileName))

	value, err := GetConfigValue("", KeyParserType)
	require.NoError(t, err)
	assert.Equal(t, "rules", value)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LocalConfigFile, cfg.Source)
	assert.Equal(t, "rules", cfg.ParserType)
	assert.Equal(t, "json", string(cfg.OutputFormat))
}

func TestListConfigKeys(t *testing.T) {
	keys := ListConfigKeys()
	assert.Contains(t, keys, KeyParserType)
	assert.Len(t, keys, 8)

	keys[0] = "mutated"
	assert.Equal(t, KeyParserType, ListConfigKeys()[0])
}

func TestReadProperties(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "config.properties"), `
# parser selection
businesscardparser.type = rules
! another comment
output.format: json
log.level warn
`)

	settings, err := readProperties(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"businesscardparser.type": "rules",
		"output.format":           "json",
		"log.level":               "warn",
	}, settings)

	_, err = readProperties(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}

func TestLoad_PropertiesSeparatorsAndPrefixKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "whitespace separator", content: "businesscardparser.type rules\n", want: "rules"},
		{name: "colon separator", content: "businesscardparser.type: rules\n", want: "rules"},
		{name: "key that prefixes another key", content: "parser.type=rules\nparser.type.extra=x\n", want: "rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, filepath.Join(t.TempDir(), "config.properties"), tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ParserType)
		})
	}
}

func TestSetConfigValue_PropertiesReadOnly(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.properties"), "businesscardparser.type=rules\n")

	err := SetConfigValue(path, KeyParserType, "default")
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeUnsupported, utils.GetErrorType(err))
}
