package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// decode strictly decodes data into v: unknown keys are errors.
func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return fmt.Errorf("failed to parse config TOML: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("failed to parse config TOML: unknown keys %v", undecoded)
		}
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}

	return nil
}

// Parse parses a single-target config.
func Parse(data []byte, format Format) (*Target, error) {
	var t Target
	if err := decode(data, format, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// ParseBatch parses a batch file.
func ParseBatch(data []byte, format Format) (*Batch, error) {
	var b Batch
	if err := decode(data, format, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadFile loads a single-target config. Relative paths in it are
// resolved against the file's directory.
func LoadFile(path string) (*Target, error) {
	data, format, err := read(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t.dir = filepath.Dir(path)

	return t, nil
}

// LoadBatch loads a batch file. Relative paths in every target are
// resolved against the file's directory.
func LoadBatch(path string) (*Batch, error) {
	data, format, err := read(path)
	if err != nil {
		return nil, err
	}

	b, err := ParseBatch(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range b.Targets {
		b.Targets[i].dir = filepath.Dir(path)
	}

	return b, nil
}

func read(path string) ([]byte, Format, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return data, format, nil
}

// resolvePath joins a relative path to the target's directory.
func (t *Target) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || t.dir == "" {
		return p
	}

	return filepath.Join(t.dir, p)
}
