package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a complete manifest document. Parsing is all-or-nothing: on
// any syntax or schema error the returned manifest is nil.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if m.Name == "" {
		return nil, ErrMissingName
	}
	if m.Version == "" {
		return nil, ErrMissingVersion
	}

	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
