package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const columnsFile = "columns.yaml"

// LoadColumns loads Columns configuration.
// Search order: customPath -> ~/.arcade/configs/columns.yaml -> ./configs/columns.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated before it is returned.
func LoadColumns(customPath string) (ColumnsConfig, error) {
	cfg, _, err := loadColumns(customPath)
	return cfg, err
}

// LoadColumnsWithSource is LoadColumns that also reports where the
// configuration came from: a file path or "embedded".
func LoadColumnsWithSource(customPath string) (ColumnsConfig, string, error) {
	return loadColumns(customPath)
}

func loadColumns(customPath string) (ColumnsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColumnsConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeColumns(data)
		if err != nil {
			return ColumnsConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ColumnsConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath(columnsFile), filepath.Join("configs", columnsFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeColumns(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeColumns(defaultColumnsYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultColumnsConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func decodeColumns(data []byte) (ColumnsConfig, error) {
	cfg := DefaultColumnsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColumnsConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ColumnsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
