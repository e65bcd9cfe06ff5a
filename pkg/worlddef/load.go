package worlddef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported definition file extension: %s", filepath.Base(path))
	}
}

// Parse decodes a definition strictly: unknown fields are an error.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed strict YAML unmarshaling: %w", err)
		}
	case FormatJSON:
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON")
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed strict JSON unmarshaling: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &def, nil
}

// LoadFile reads and parses a definition file.
func LoadFile(path string) (*Definition, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS reads and parses a definition from a file system.
func LoadFS(fsys fs.FS, name string) (*Definition, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", name, err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", name, err)
	}
	return def, nil
}
