package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/utils"
)

const (
	ConfigFileName  = "config.yaml"
	LocalConfigFile = "bizcard.yaml"
	AppDirName      = ".bizcard"
)

// knownKeys lists the settings managed by `bizcard config`
var knownKeys = []string{
	KeyParserType,
	KeyOutputFormat,
	KeyLogLevel,
	KeyLogFile,
	KeyLogVerbose,
	KeyOCRLanguage,
	KeyTimeoutMinutes,
	KeyMaxInputSizeMB,
}

// GetConfigDir returns the user configuration directory (~/.bizcard)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}

	return filepath.Join(homeDir, AppDirName), nil
}

// GetConfigFilePath returns the full path to the user configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// ResolveConfigFile picks the config file to read: the explicit path if
// given, else ./bizcard.yaml, else ~/.bizcard/config.yaml. It returns ""
// when none of the implicit candidates exist.
func ResolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if fileExists(LocalConfigFile) {
		return LocalConfigFile
	}

	if userPath, err := GetConfigFilePath(); err == nil && fileExists(userPath) {
		return userPath
	}

	return ""
}

// ListConfigKeys returns all configurable keys
func ListConfigKeys() []string {
	return slices.Clone(knownKeys)
}

// IsValidKey reports whether key is a configurable setting
func IsValidKey(key string) bool {
	return slices.Contains(knownKeys, key)
}

// GetConfigValue returns the effective value of key, taking the config file
// at path and the environment into account
func GetConfigValue(path, key string) (string, error) {
	if !IsValidKey(key) {
		return "", utils.NewValidationError(fmt.Sprintf("unknown configuration key: %s", key), nil)
	}

	v, _, err := newViper(ResolveConfigFile(path), true)
	if err != nil {
		return "", err
	}

	return v.GetString(key), nil
}

// SetConfigValue persists key=value to the config file at path, creating the
// file if needed. An empty path targets the file reads resolve to, or the
// user configuration file when there is none.
func SetConfigValue(path, key, value string) error {
	if !IsValidKey(key) {
		return utils.NewValidationError(fmt.Sprintf("unknown configuration key: %s", key), nil)
	}

	if path == "" {
		path = ResolveConfigFile("")
	}
	if path == "" {
		userPath, err := GetConfigFilePath()
		if err != nil {
			return err
		}
		path = userPath
	}
	if isPropertiesFile(path) {
		return utils.NewUnsupportedError("properties files are read-only, use a YAML config file", nil)
	}

	readPath := ""
	if fileExists(path) {
		readPath = path
	}

	// Environment overrides must not leak into the persisted file
	v, _, err := newViper(readPath, false)
	if err != nil {
		return err
	}
	v.Set(key, value)

	candidate := fromViper(v)
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultDirPermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	if err := v.WriteConfigAs(path); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write config file")
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
