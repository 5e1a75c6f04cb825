// seehuhn.de/go/scanfill - scan-line polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the scanfill command.
//
// Settings come from three layers, each overriding the previous one:
// built-in defaults, an optional YAML file and SCANFILL_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RasterConfig describes the pixel grid.
type RasterConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Snap   bool `yaml:"snap"` // round vertices to whole pixels
}

// LogicalConfig describes the logical window the input coordinates refer
// to.  The window is centred on the origin.
type LogicalConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RenderConfig controls the appearance of the output.
type RenderConfig struct {
	StrokeWidth float64 `yaml:"stroke_width"`
	Ink         uint8   `yaml:"ink"`      // gray level of the boundary
	FillInk     uint8   `yaml:"fill_ink"` // gray level of the interior
	Scale       int     `yaml:"scale"`    // PNG enlargement factor
}

// OutputConfig names the files to write.  Empty names are skipped.
type OutputConfig struct {
	PNG string `yaml:"png"`
	PDF string `yaml:"pdf"`
}

// LoggingConfig mirrors the options of the log package.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Config is the complete configuration.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Raster        RasterConfig  `yaml:"raster"`
	Logical       LogicalConfig `yaml:"logical"`
	Render        RenderConfig  `yaml:"render"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// CurrentVersion is the config_version written by Save.
const CurrentVersion = 1

// Environment variables which override file settings.
const (
	EnvRasterWidth  = "SCANFILL_RASTER_WIDTH"
	EnvRasterHeight = "SCANFILL_RASTER_HEIGHT"
	EnvSnap         = "SCANFILL_SNAP"
	EnvScale        = "SCANFILL_SCALE"
	EnvLogLevel     = "SCANFILL_LOG_LEVEL"
	EnvLogFormat    = "SCANFILL_LOG_FORMAT"
	EnvLogSource    = "SCANFILL_LOG_SOURCE"
	EnvLogFile      = "SCANFILL_LOG_FILE"
)

// Defaults returns the built-in configuration: a 500×500 raster showing a
// 10×10 logical window.
func Defaults() Config {
	return Config{
		ConfigVersion: CurrentVersion,
		Raster:        RasterConfig{Width: 500, Height: 500},
		Logical:       LogicalConfig{Width: 10, Height: 10},
		Render:        RenderConfig{StrokeWidth: 1, Ink: 0, FillInk: 0, Scale: 1},
		Output:        OutputConfig{PNG: "polygon.png"},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load returns the defaults, overridden by the YAML file at path (if path
// is not empty) and by the environment.  A missing file is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg, data)
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cfg.ConfigVersion = CurrentVersion
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that all sizes are positive.
func (c Config) Validate() error {
	var errs []error
	if c.Raster.Width <= 0 || c.Raster.Height <= 0 {
		errs = append(errs, fmt.Errorf("raster size %dx%d is not positive", c.Raster.Width, c.Raster.Height))
	}
	if c.Logical.Width <= 0 || c.Logical.Height <= 0 {
		errs = append(errs, fmt.Errorf("logical size %gx%g is not positive", c.Logical.Width, c.Logical.Height))
	}
	if c.Render.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke width %g is not positive", c.Render.StrokeWidth))
	}
	if c.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d is not positive", c.Render.Scale))
	}
	return errors.Join(errs...)
}

// mergeInto copies the settings given in the file over the defaults.
// Booleans and gray levels are only copied if their key is present in
// the file, since their zero values are meaningful.
func mergeInto(dst, src *Config, data []byte) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Raster.Width != 0 {
		dst.Raster.Width = src.Raster.Width
	}
	if src.Raster.Height != 0 {
		dst.Raster.Height = src.Raster.Height
	}
	if src.Logical.Width != 0 {
		dst.Logical.Width = src.Logical.Width
	}
	if src.Logical.Height != 0 {
		dst.Logical.Height = src.Logical.Height
	}
	if src.Render.StrokeWidth != 0 {
		dst.Render.StrokeWidth = src.Render.StrokeWidth
	}
	if src.Render.Scale != 0 {
		dst.Render.Scale = src.Render.Scale
	}
	if src.Output.PNG != "" {
		dst.Output.PNG = src.Output.PNG
	}
	if src.Output.PDF != "" {
		dst.Output.PDF = src.Output.PDF
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}

	var present struct {
		Raster  map[string]any `yaml:"raster"`
		Render  map[string]any `yaml:"render"`
		Logging map[string]any `yaml:"logging"`
	}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return
	}
	if _, ok := present.Raster["snap"]; ok {
		dst.Raster.Snap = src.Raster.Snap
	}
	if _, ok := present.Render["ink"]; ok {
		dst.Render.Ink = src.Render.Ink
	}
	if _, ok := present.Render["fill_ink"]; ok {
		dst.Render.FillInk = src.Render.FillInk
	}
	if _, ok := present.Logging["source"]; ok {
		dst.Logging.Source = src.Logging.Source
	}
}

func applyEnvOverrides(cfg *Config) {
	if n, ok := envInt(EnvRasterWidth); ok {
		cfg.Raster.Width = n
	}
	if n, ok := envInt(EnvRasterHeight); ok {
		cfg.Raster.Height = n
	}
	if b, ok := envBool(EnvSnap); ok {
		cfg.Raster.Snap = b
	}
	if n, ok := envInt(EnvScale); ok {
		cfg.Render.Scale = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if b, ok := envBool(EnvLogSource); ok {
		cfg.Logging.Source = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return false, false
	}
	return v == "1" || v == "true" || v == "on" || v == "yes", true
}
