package config

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
)

//go:embed presets
var presetFS embed.FS

// Preset names.
const (
	PresetUncheckers   = "uncheckers"
	PresetIoUncheckers = "io-uncheckers"
)

// PresetNames lists the embedded presets, sorted.
func PresetNames() []string {
	entries, _ := presetFS.ReadDir("presets")

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}

	slices.Sort(names)

	return names
}

// Preset returns a copy of the named embedded preset.
func Preset(name string) (*Target, error) {
	entries, _ := presetFS.ReadDir("presets")

	for _, e := range entries {
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) != name {
			continue
		}

		format, err := FormatOf(e.Name())
		if err != nil {
			return nil, err
		}

		data, err := presetFS.ReadFile(path.Join("presets", e.Name()))
		if err != nil {
			return nil, err
		}

		t, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}

		return t, nil
	}

	return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}

// Resolved returns the target with its preset applied. A target without a
// preset is returned unchanged.
func (t *Target) Resolved() (*Target, error) {
	if t.Preset == "" {
		return t, nil
	}

	base, err := Preset(t.Preset)
	if err != nil {
		return nil, err
	}

	r := t.withDefaults(base)

	return &r, nil
}
