// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package config loads cmd/tqlfmt's presentation settings: indent width,
// color, and log format/level. It has no bearing on parse semantics -
// grammar behavior is never configurable.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is the resolved presentation configuration for cmd/tqlfmt.
type Config struct {
	Indent    int    `koanf:"indent"`
	Color     bool   `koanf:"color"`
	LogFormat string `koanf:"log_format"`
	LogLevel  string `koanf:"log_level"`
}

// defaults are the lowest layer, overridden by an optional .tqlfmt.yaml and
// then by CLI flags.
var defaults = Config{
	Indent:    4,
	Color:     true,
	LogFormat: "text",
	LogLevel:  "info",
}

// Load layers defaults, an optional YAML file at path (an empty path skips
// this layer; a path that cannot be loaded is an error), and the command's
// flags, in that order.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structProvider(defaults), nil); err != nil {
		return Config{}, fmt.Errorf("loading config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("loading config flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("log-format must be %q or %q, got %q", "json", "text", cfg.LogFormat)
	}
	if cfg.Indent < 0 {
		return Config{}, fmt.Errorf("indent must be non-negative, got %d", cfg.Indent)
	}
	return cfg, nil
}

// structProvider adapts a plain struct as a koanf confmap source, for
// layering the compiled-in defaults under file and flag overrides.
func structProvider(cfg Config) koanf.Provider {
	return confProvider{
		"indent":     cfg.Indent,
		"color":      cfg.Color,
		"log_format": cfg.LogFormat,
		"log_level":  cfg.LogLevel,
	}
}

// confProvider is a minimal koanf.Provider over a flat map, used only to
// seed defaults before the file and flag layers apply.
type confProvider map[string]any

func (p confProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("confProvider does not support ReadBytes")
}

func (p confProvider) Read() (map[string]any, error) {
	return map[string]any(p), nil
}
