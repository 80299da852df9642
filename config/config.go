// Package config loads filter chain definitions from YAML and builds chains
// from them. The file format is the module's own configuration surface; each
// filter entry's options are handed to the filter construction code as a
// property map.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jgornowich/log4cplus/filter"
	"github.com/jgornowich/log4cplus/properties"
)

// File is the top-level YAML chain definition.
type File struct {
	Version  int           `yaml:"version"`
	Settings Settings      `yaml:"settings"`
	Filters  []FilterEntry `yaml:"filters"`
}

// Settings contains global settings.
type Settings struct {
	// TraceDir is the directory for decision trace output. Empty disables
	// tracing.
	TraceDir string `yaml:"trace_dir"`
}

// FilterEntry is one filter in the chain, in evaluation order.
type FilterEntry struct {
	Type    string            `yaml:"type"`
	Options map[string]string `yaml:"options"`
}

// LoadFile reads and validates a YAML chain definition file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading filter config: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates YAML chain definition data.
func LoadBytes(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing filter config YAML: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	f.Settings.TraceDir = expandHome(f.Settings.TraceDir)
	return &f, nil
}

func validate(f *File) error {
	if f.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", f.Version)
	}
	for i, entry := range f.Filters {
		if entry.Type == "" {
			return fmt.Errorf("filter %d: type is required", i)
		}
		if !filter.KnownType(entry.Type) {
			return fmt.Errorf("filter %d: unknown type %q (known: %v)", i, entry.Type, filter.Types())
		}
	}
	return nil
}

// BuildChain constructs the filter chain the file defines, in order. The
// logger may be nil.
func (f *File) BuildChain(logger *slog.Logger) (*filter.Chain, error) {
	chain := filter.NewChain(logger)
	for i, entry := range f.Filters {
		flt, err := filter.FromType(entry.Type, properties.FromMap(entry.Options))
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s): %w", i, entry.Type, err)
		}
		chain.Append(flt)
	}
	return chain, nil
}

func expandHome(path string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
