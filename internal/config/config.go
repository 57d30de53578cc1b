// Package config loads the optional per-edition tkkunify.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors tkkunify.yaml. All fields are optional;
// command-line flags and environment variables take precedence.
type ProjectConfig struct {
	// Metadata is the textcritics JSON document, relative to the
	// config file's folder unless absolute.
	Metadata string `yaml:"metadata"`

	// SvgDir is the folder holding the SVG sheets, relative to the
	// config file's folder unless absolute.
	SvgDir string `yaml:"svg_dir"`

	// IDPrefix overrides the canonical ID prefix.
	IDPrefix string `yaml:"id_prefix"`

	// RowTableMarker overrides the filename marker identifying row
	// table sheets.
	RowTableMarker string `yaml:"row_table_marker"`
}

const ConfigFileName = "tkkunify.yaml"

// Load reads tkkunify.yaml from the given folder. Relative paths in
// the file are resolved against that folder.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Metadata != "" && !filepath.IsAbs(cfg.Metadata) {
		cfg.Metadata = filepath.Join(sourcePath, cfg.Metadata)
	}
	if cfg.SvgDir != "" && !filepath.IsAbs(cfg.SvgDir) {
		cfg.SvgDir = filepath.Join(sourcePath, cfg.SvgDir)
	}
	return &cfg, nil
}
