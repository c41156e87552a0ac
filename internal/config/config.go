// Package config loads the optional ~/.rumbo/config.yaml. It only carries
// presentation preferences; plan data never lives here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/viewmodel"
)

const fileName = "config.yaml"

// View names accepted for default_view.
const (
	ViewBoard    = "board"
	ViewCalendar = "calendar"
	ViewTimeline = "timeline"
)

// TypeStyle overrides the presentation of one plan type. Empty fields keep
// the built-in value.
type TypeStyle struct {
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`
	Label string `yaml:"label,omitempty"`
}

// Config models config.yaml.
type Config struct {
	DefaultView string               `yaml:"default_view,omitempty"`
	Types       map[string]TypeStyle `yaml:"types,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{DefaultView: ViewBoard}
}

// Load reads config.yaml from the rumbo home directory. A missing file is
// not an error; it yields the defaults.
func Load() (*Config, error) {
	home, err := plan.Home()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(home, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !validView(cfg.DefaultView) {
		cfg.DefaultView = ViewBoard
	}
	return cfg, nil
}

func validView(v string) bool {
	switch v {
	case ViewBoard, ViewCalendar, ViewTimeline:
		return true
	}
	return false
}

// TypeStyles merges the config's overrides over the built-in plan type
// presentation and returns the map the renderers consume.
func (c *Config) TypeStyles() viewmodel.TypeStyles {
	styles := viewmodel.DefaultTypeStyles()
	for name, override := range c.Types {
		d := styles.ForType(plan.Type(name))
		if override.Icon != "" {
			d.Icon = override.Icon
		}
		if override.Color != "" {
			d.Color = override.Color
		}
		if override.Label != "" {
			d.Label = override.Label
		}
		styles[plan.Type(name)] = d
	}
	return styles
}
