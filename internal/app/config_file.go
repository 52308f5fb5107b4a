package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags.
type FileConfig struct {
	Version string `yaml:"version" json:"version"`

	Manual struct {
		Base      string `yaml:"base" json:"base"`
		UserAgent string `yaml:"userAgent" json:"userAgent"`
	} `yaml:"manual" json:"manual"`

	Output struct {
		JSON string `yaml:"json" json:"json"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Max struct {
		Concurrent int `yaml:"concurrent" json:"concurrent"`
	} `yaml:"max" json:"max"`

	Only     string `yaml:"only" json:"only"`
	Discover bool   `yaml:"discover" json:"discover"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Version == "" && fc.Version != "" {
		cfg.Version = fc.Version
	}
	if cfg.BaseURL == "" && fc.Manual.Base != "" {
		cfg.BaseURL = fc.Manual.Base
	}
	if cfg.UserAgent == "" && fc.Manual.UserAgent != "" {
		cfg.UserAgent = fc.Manual.UserAgent
	}
	if cfg.OutputPath == "" && fc.Output.JSON != "" {
		cfg.OutputPath = fc.Output.JSON
	}
	if cfg.OutputPDFPath == "" && fc.Output.PDF != "" {
		cfg.OutputPDFPath = fc.Output.PDF
	}
	if cfg.MaxConcurrent == 0 && fc.Max.Concurrent != 0 {
		cfg.MaxConcurrent = fc.Max.Concurrent
	}
	if cfg.Only == "" && fc.Only != "" {
		cfg.Only = fc.Only
	}
	if !cfg.Discover && fc.Discover {
		cfg.Discover = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
