package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures CLI options sourced from the config file or flags.
type Config struct {
	Format         string `yaml:"format"`
	Verbose        bool   `yaml:"verbose"`
	IncludeRawDump bool   `yaml:"include_raw_dump"`
	AnnotateInline bool   `yaml:"annotate_inline"`
}

const (
	// FormatMarkdown renders the human readable markdown report.
	FormatMarkdown = "markdown"
	// FormatJSON renders the canonical report model as JSON.
	FormatJSON = "json"
)

// Default returns the baseline configuration used when no flags or config
// file specify values.
func Default() Config {
	return Config{Format: FormatMarkdown}
}

// Load reads .jobsum.yml from the working directory root when present.
// Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".jobsum.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

func merge(base, override Config) Config {
	out := base

	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Verbose {
		out.Verbose = true
	}
	if override.IncludeRawDump {
		out.IncludeRawDump = true
	}
	if override.AnnotateInline {
		out.AnnotateInline = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are
// present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
	if flags.IncludeRawDump.Set {
		cfg.IncludeRawDump = flags.IncludeRawDump.Value
	}
	if flags.AnnotateInline.Set {
		cfg.AnnotateInline = flags.AnnotateInline.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag
// was set explicitly.
type FlagValues struct {
	Format         StringFlag
	Verbose        BoolFlag
	IncludeRawDump BoolFlag
	AnnotateInline BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
