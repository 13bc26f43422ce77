package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSyllables loads the puzzle configuration.
// Search order: customPath -> ~/.syllables/configs/syllables.yaml -> ./configs/syllables.yaml -> embedded default
func LoadSyllables(customPath string) (SyllablesConfig, error) {
	var cfg SyllablesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		applyDisplayDefaults(&cfg)
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("syllables.yaml"), filepath.Join("configs", "syllables.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := tryLoad(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSyllablesYAML, &cfg); err != nil {
		return DefaultSyllablesConfig(), nil // Fallback to hardcoded if embed fails
	}
	applyDisplayDefaults(&cfg)
	return cfg, nil
}

// LoadCatalog loads the configuration and builds a validated catalogue from it.
func LoadCatalog(customPath string) (*Catalog, SyllablesConfig, error) {
	cfg, err := LoadSyllables(customPath)
	if err != nil {
		return nil, cfg, err
	}
	cat, err := NewCatalog(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return cat, cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (SyllablesConfig, bool) {
	var cfg SyllablesConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	applyDisplayDefaults(&cfg)
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".syllables", "configs", filename)
}
