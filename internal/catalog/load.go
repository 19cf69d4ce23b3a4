package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Models []Model `yaml:"models"`
}

// Parse reads a YAML catalog of the form `models: [...]`.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Models) == 0 {
		return nil, errors.New("parse catalog: no models defined")
	}
	return New(f.Models...)
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from RORICODE_HOME
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault returns the catalog at path, or the built-in catalog when
// the file does not exist.
func LoadOrDefault(path string) (*Catalog, error) {
	c, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}
