package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadError reports a failure to obtain a usable schema. The validator
// cannot be constructed without one, so callers should treat this as fatal.
type LoadError struct {
	Path     string
	NotFound bool
	Err      error
}

func (e *LoadError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("schema file not found: %s", e.Path)
	}
	if e.Path != "" {
		return fmt.Sprintf("failed to parse schema %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse schema: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses a YAML schema file into a schema tree.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, NotFound: true, Err: err}
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	s, err := Parse(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Parse parses YAML schema bytes into a schema tree.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{Err: err}
	}
	return &s, nil
}
