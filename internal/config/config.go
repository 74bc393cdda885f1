// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the badge layout configuration from a YAML file,
// creating the file with defaults when it does not exist. Every key can be
// overridden from the environment as NAMETAGS_<KEY> (e.g. NAMETAGS_FONT_NAME).
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nametags/internal/layout"
	"github.com/pdiddy/nametags/pkg/types"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "NAMETAGS"

// Load reads the configuration at path. If the file does not exist it is
// created with DefaultConfig and the defaults are used; created reports
// whether that happened. Status lines are written to w.
func Load(path string, w io.Writer) (cfg types.Config, created bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if !errors.Is(statErr, fs.ErrNotExist) {
			return cfg, false, fmt.Errorf("loading configuration: %w", statErr)
		}
		fmt.Fprintf(w, "config file %s not found, creating default\n", path)
		if err := Write(path, types.DefaultConfig()); err != nil {
			return cfg, false, fmt.Errorf("creating default configuration: %w", err)
		}
		fmt.Fprintf(w, "created: %s\n", path)
		created = true
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, created, fmt.Errorf("loading configuration: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, created, fmt.Errorf("decoding configuration %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, created, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, created, nil
}

// Write saves cfg as YAML at path, creating parent directories as needed.
// An existing file is overwritten.
func Write(path string, cfg types.Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the invariants the layout depends on.
func Validate(cfg types.Config) error {
	var problems []string
	if strings.TrimSpace(cfg.NamesFile) == "" {
		problems = append(problems, "names_file_path is empty")
	}
	if cfg.CellWidthCM <= 0 {
		problems = append(problems, fmt.Sprintf("cell_width_cm must be positive, got %g", cfg.CellWidthCM))
	}
	if cfg.CellHeightCM <= 0 {
		problems = append(problems, fmt.Sprintf("cell_height_cm must be positive, got %g", cfg.CellHeightCM))
	}
	if strings.TrimSpace(cfg.FontName) == "" {
		problems = append(problems, "font_name is empty")
	}
	if _, ok := layout.LookupPageSize(cfg.PageSize); !ok {
		problems = append(problems, fmt.Sprintf("unknown page_size %q", cfg.PageSize))
	}
	if strings.TrimSpace(cfg.OutputFile) == "" {
		problems = append(problems, "output_file is empty")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := types.DefaultConfig()
	v.SetDefault("names_file_path", def.NamesFile)
	v.SetDefault("cell_width_cm", def.CellWidthCM)
	v.SetDefault("cell_height_cm", def.CellHeightCM)
	v.SetDefault("font_name", def.FontName)
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("margins", def.Margins)
	v.SetDefault("output_file", def.OutputFile)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}
