package config

import (
	"fmt"
	"os"
	"sort"
)

// Presets are ready-to-run configurations. "wave" is the canonical
// plane-wave plus single-electron setup; the others vary the pusher and
// the output sink.
var presets = map[string]*File{
	"wave": {
		Grid:  GridConfig{N: 64, Min: 0, Max: 1},
		Clock: ClockConfig{Start: 0, End: 1, NumSteps: 400},
		Tools: []Component{
			{Type: "ForwardEuler"},
		},
		Modules: []Component{
			{Type: "EMWave", Params: map[string]any{"amplitude": 10.0, "omega": 18.0}},
			{Type: "ChargedParticle", Params: map[string]any{"position": 0.5, "pusher": "ForwardEuler"}},
		},
		Diagnostics: []Component{
			{Type: "ParticleDiagnostic", Name: "momentum_csv",
				Params: map[string]any{"component": "momentum", "output_type": "csv", "filename": "momentum.csv"}},
			{Type: "ParticleDiagnostic", Name: "position_csv",
				Params: map[string]any{"component": "position", "output_type": "csv", "filename": "position.csv"}},
		},
	},
	"boris": {
		Grid:  GridConfig{N: 64, Min: 0, Max: 1},
		Clock: ClockConfig{Start: 0, End: 1, NumSteps: 400},
		Tools: []Component{
			{Type: "Boris"},
		},
		Modules: []Component{
			{Type: "EMWave", Params: map[string]any{"amplitude": 10.0, "omega": 18.0}},
			{Type: "ChargedParticle", Params: map[string]any{"position": 0.5, "pusher": "Boris"}},
		},
		Diagnostics: []Component{
			{Type: "ParticleDiagnostic", Name: "momentum_csv",
				Params: map[string]any{"component": "momentum", "output_type": "csv", "filename": "momentum.csv"}},
		},
	},
	"print": {
		Grid:  GridConfig{N: 16, Min: 0, Max: 1},
		Clock: ClockConfig{Start: 0, End: 1, NumSteps: 10},
		Tools: []Component{
			{Type: "ForwardEuler"},
		},
		Modules: []Component{
			{Type: "EMWave", Params: map[string]any{"amplitude": 10.0, "omega": 18.0}},
			{Type: "ChargedParticle", Params: map[string]any{"position": 0.5, "pusher": "ForwardEuler"}},
		},
		Diagnostics: []Component{
			{Type: "ParticleDiagnostic",
				Params: map[string]any{"component": "momentum", "output_type": "stdout"}},
		},
	},
}

// Example returns the canonical run configuration.
func Example() *File { return presets["wave"] }

// Preset returns the named preset, or nil when it does not exist.
func Preset(name string) *File { return presets[name] }

// PresetNames lists the available presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteExample writes the named preset to path in the format implied by
// the extension. An existing file is refused unless force is set.
func WriteExample(path, preset string, force bool) error {
	f := Preset(preset)
	if f == nil {
		return fmt.Errorf("unknown preset: %s", preset)
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return Save(path, f)
}
