package domain

import (
	"fmt"
	"strings"
)

// Built-in defaults, relative to the root directory.
const (
	DefaultFileName = "logo.json"
	DefaultSchema   = "schemas/logo.schema.json"
	DefaultLogoDir  = "logos"
	DefaultDraft    = "draft7"
	ConfigFileName  = ".logocheck.yaml"
)

// ValidDrafts enumerates the accepted schema dialects.
var ValidDrafts = []string{"draft4", "draft6", "draft7", "2019-09", "2020-12"}

// Config holds settings loaded from .logocheck.yaml. Empty fields fall back
// to the built-in defaults.
type Config struct {
	Schema      string   `yaml:"schema"       json:"schema,omitempty"`
	LogoDir     string   `yaml:"logo_dir"     json:"logo_dir,omitempty"`
	FileName    string   `yaml:"file_name"    json:"file_name,omitempty"`
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs,omitempty"`
	Draft       string   `yaml:"draft"        json:"draft,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Schema:   DefaultSchema,
		LogoDir:  DefaultLogoDir,
		FileName: DefaultFileName,
		Draft:    DefaultDraft,
	}
}

// WithDefaults fills every empty field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Schema == "" {
		c.Schema = d.Schema
	}
	if c.LogoDir == "" {
		c.LogoDir = d.LogoDir
	}
	if c.FileName == "" {
		c.FileName = d.FileName
	}
	if c.Draft == "" {
		c.Draft = d.Draft
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Draft != "" && !isValidDraft(c.Draft) {
		return fmt.Errorf("unknown draft %q (valid: %s)", c.Draft, strings.Join(ValidDrafts, ", "))
	}
	if strings.ContainsAny(c.FileName, `/\`) {
		return fmt.Errorf("file_name %q must be a bare file name", c.FileName)
	}
	for _, d := range c.ExcludeDirs {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("exclude_dirs contains an empty entry")
		}
	}
	return nil
}

func isValidDraft(d string) bool {
	for _, v := range ValidDrafts {
		if v == d {
			return true
		}
	}
	return false
}
