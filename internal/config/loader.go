package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file looked up in the config directories.
const FileName = "pacman.yaml"

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LoadPacman loads the tuning file.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func LoadPacman(customPath string) (PacmanConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return PacmanConfig{}, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if p := userConfigPath(FileName); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads and validates one tuning file. Keys missing from the file
// keep their built-in defaults.
func loadFile(path string) (PacmanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PacmanConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return PacmanConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg PacmanConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// IsInvalid reports whether err came from validation.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// userConfigPath returns the path of a file in the user config directory,
// or "" when the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
