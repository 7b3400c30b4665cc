package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// configNames are tried, in order, inside each search directory.
var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.gradius/config.{yaml,yml,toml} ->
// ./configs/config.{yaml,yml,toml} -> embedded default.
//
// Files only need to set the fields they change; everything else keeps
// its default value. An explicit customPath that cannot be read or parsed
// is an error, while broken files on the implicit search path are skipped.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads a single YAML or TOML file layered over the defaults and
// validates the result. The format is chosen by file extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format implied by ext (".toml" or YAML for
// anything else) over the defaults and validates it.
func Parse(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// searchDirs returns the implicit config directories in priority order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".gradius"))
	}
	return append(dirs, "configs")
}
