package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logocheck/logocheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.ConfigLoader by reading .logocheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .logocheck.yaml from rootPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(rootPath string) (domain.Config, error) {
	cfg, err := l.LoadFile(filepath.Join(rootPath, domain.ConfigFileName))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit config file. Unlike Load, a missing file is an error.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate before applying defaults so typos in the raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg.WithDefaults(), nil
}
