// Package config loads, validates, and writes simulation run files. A run
// file declares the grid, the clock, and ordered component lists whose
// order fixes initialization and update order. YAML and TOML are both
// accepted, dispatched on file extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat reports a config file extension with no decoder.
var ErrUnknownFormat = errors.New("config: unknown file format")

type File struct {
	Grid        GridConfig  `yaml:"grid" toml:"grid"`
	Clock       ClockConfig `yaml:"clock" toml:"clock"`
	Tools       []Component `yaml:"tools" toml:"tools"`
	Modules     []Component `yaml:"modules" toml:"modules"`
	Diagnostics []Component `yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
}

type GridConfig struct {
	N   int     `yaml:"n" toml:"n"`
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// ClockConfig fixes the run interval. Exactly one of NumSteps and Dt is
// given; the other is derived.
type ClockConfig struct {
	Start    float64 `yaml:"start" toml:"start"`
	End      float64 `yaml:"end" toml:"end"`
	NumSteps int     `yaml:"num_steps,omitempty" toml:"num_steps,omitempty"`
	Dt       float64 `yaml:"dt,omitempty" toml:"dt,omitempty"`
}

// Component declares one configured instance of a registered type. Params
// stays untyped here; components read it through their own accessors.
type Component struct {
	Type   string         `yaml:"type" toml:"type"`
	Name   string         `yaml:"name,omitempty" toml:"name,omitempty"`
	Params map[string]any `yaml:"params,omitempty" toml:"params,omitempty"`
}

// InstanceName returns the component's instance name, defaulting to its
// type when no explicit name is set.
func (c Component) InstanceName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func Save(path string, f *File) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	case ".toml":
		data, err = toml.Marshal(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural sanity. Per-component parameter checks happen
// later, when each component reads its params at construction.
func (f *File) Validate() error {
	if f.Grid.N < 2 {
		return fmt.Errorf("grid: need at least 2 points, got %d", f.Grid.N)
	}
	if f.Grid.Max <= f.Grid.Min {
		return fmt.Errorf("grid: max %v not above min %v", f.Grid.Max, f.Grid.Min)
	}
	if f.Clock.End <= f.Clock.Start {
		return fmt.Errorf("clock: end %v not after start %v", f.Clock.End, f.Clock.Start)
	}
	if f.Clock.NumSteps < 0 || f.Clock.Dt < 0 {
		return fmt.Errorf("clock: negative step specification")
	}
	if (f.Clock.NumSteps > 0) == (f.Clock.Dt > 0) {
		return fmt.Errorf("clock: exactly one of num_steps and dt must be set")
	}
	if err := checkComponents("tools", f.Tools); err != nil {
		return err
	}
	if err := checkComponents("modules", f.Modules); err != nil {
		return err
	}
	return checkComponents("diagnostics", f.Diagnostics)
}

func checkComponents(kind string, list []Component) error {
	seen := make(map[string]bool, len(list))
	for i, c := range list {
		if strings.TrimSpace(c.Type) == "" {
			return fmt.Errorf("%s[%d]: missing type", kind, i)
		}
		name := c.InstanceName()
		if seen[name] {
			return fmt.Errorf("%s[%d]: duplicate name %q", kind, i, name)
		}
		seen[name] = true
	}
	return nil
}
