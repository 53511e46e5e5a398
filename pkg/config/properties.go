package config

import (
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// isPropertiesFile reports whether path names a Java-style properties file
func isPropertiesFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties", ".props", ".prop":
		return true
	}
	return false
}

// readProperties loads a properties file into a flat settings map for
// viper.MergeConfigMap. Keys keep their dots; viper resolves "parser.type"
// against a flat key before descending into nested maps, so a key that is
// also the prefix of another key keeps its value.
func readProperties(path string) (map[string]any, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]any, props.Len())
	for key, value := range props.Map() {
		settings[strings.ToLower(key)] = value
	}
	return settings, nil
}
