// Package config loads default flag values for the mdtable command from a
// YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/mdtable"
)

// File mirrors the command's flags. Unset fields leave the flag default alone.
type File struct {
	Aligns     string `yaml:"aligns" toml:"aligns"`
	Padding    *int   `yaml:"padding" toml:"padding"`
	Save       string `yaml:"save" toml:"save"`
	Delimiter  string `yaml:"delimiter" toml:"delimiter"`
	QuoteChar  string `yaml:"quotechar" toml:"quotechar"`
	EscapeChar string `yaml:"escapechar" toml:"escapechar"`
	WriteMode  string `yaml:"writemode" toml:"writemode"`
	Format     string `yaml:"format" toml:"format"`
}

// Load reads path. The extension selects the decoder: .yaml, .yml, or .toml.
// Unknown keys are rejected.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return f, fmt.Errorf("%w: decode %s: %w", mdtable.ErrInvalidConfig, path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return f, fmt.Errorf("%w: decode %s: %w", mdtable.ErrInvalidConfig, path, err)
		}
	default:
		return f, fmt.Errorf("%w: config file %s: unsupported extension %q", mdtable.ErrInvalidConfig, path, ext)
	}
	return f, nil
}

// Values returns the set fields keyed by flag name.
func (f File) Values() map[string]string {
	vals := make(map[string]string)
	set := func(name, v string) {
		if v != "" {
			vals[name] = v
		}
	}
	set("aligns", f.Aligns)
	if f.Padding != nil {
		vals["padding"] = strconv.Itoa(*f.Padding)
	}
	set("save", f.Save)
	set("delimiter", f.Delimiter)
	set("quotechar", f.QuoteChar)
	set("escapechar", f.EscapeChar)
	set("writemode", f.WriteMode)
	set("format", f.Format)
	return vals
}
