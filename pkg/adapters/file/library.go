package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openburn/motordoc/pkg/domain"
	"gopkg.in/yaml.v3"
)

const libraryFileType = "propellants"

// LibraryStore implements ports.LibraryStore as one YAML file holding
// the full propellant collection.
type LibraryStore struct {
	Path string
}

// NewLibraryStore creates a library store at the given file path.
// If path is empty, it defaults to ".motordoc/propellants.yaml".
func NewLibraryStore(path string) *LibraryStore {
	if path == "" {
		path = filepath.Join(".motordoc", "propellants.yaml")
	}
	return &LibraryStore{Path: path}
}

// Load reads the library file. A missing file loads as an empty
// library.
func (s *LibraryStore) Load(ctx context.Context) ([]domain.Propellant, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Propellant{}, nil
		}
		return nil, fmt.Errorf("failed to read propellant library: %w", err)
	}

	var env struct {
		Version string           `yaml:"version"`
		Type    string           `yaml:"type"`
		Data    []map[string]any `yaml:"data"`
	}
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse propellant library %s: %w", s.Path, err)
	}
	if env.Type != libraryFileType {
		return nil, fmt.Errorf("%s is not a propellant library file (type %q)", s.Path, env.Type)
	}
	if !compatibleVersion(env.Version) {
		return nil, fmt.Errorf("%w: library file is %q, supported is %q", domain.ErrVersionMismatch, env.Version, FileVersion)
	}

	entries := make([]domain.Propellant, 0, len(env.Data))
	for i, item := range env.Data {
		var p domain.Propellant
		if err := decodePayload(item, &p); err != nil {
			return nil, fmt.Errorf("failed to decode library entry %d: %w", i, err)
		}
		entries = append(entries, p)
	}
	return entries, nil
}

// Persist writes the full collection.
func (s *LibraryStore) Persist(ctx context.Context, propellants []domain.Propellant) error {
	data, err := yaml.Marshal(struct {
		Version string              `yaml:"version"`
		Type    string              `yaml:"type"`
		Data    []domain.Propellant `yaml:"data"`
	}{
		Version: FileVersion,
		Type:    libraryFileType,
		Data:    propellants,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal propellant library: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure library directory: %w", err)
		}
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write propellant library: %w", err)
	}
	return nil
}
