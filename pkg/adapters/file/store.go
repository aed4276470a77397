package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/openburn/motordoc/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Ext is the design file extension. Paths lacking it have it appended
// before persisting.
const Ext = ".ric"

// FileVersion is the design file format version written by this
// package. Files with a different major version fail to load.
const FileVersion = "0.6.0"

const designFileType = "motor"

// envelope is the on-disk wrapper around any motordoc document.
type envelope struct {
	Version string         `yaml:"version"`
	Type    string         `yaml:"type"`
	Data    map[string]any `yaml:"data"`
}

// Store implements ports.DesignStore on the local filesystem, writing
// YAML design files.
type Store struct{}

// NewStore creates a filesystem design store.
func NewStore() *Store {
	return &Store{}
}

// NormalizePath appends the design file extension when missing.
func (s *Store) NormalizePath(path string) string {
	if !strings.HasSuffix(path, Ext) {
		return path + Ext
	}
	return path
}

// Save persists the design as a YAML file at path.
func (s *Store) Save(ctx context.Context, path string, design *domain.Design) error {
	data, err := yaml.Marshal(struct {
		Version string         `yaml:"version"`
		Type    string         `yaml:"type"`
		Data    *domain.Design `yaml:"data"`
	}{
		Version: FileVersion,
		Type:    designFileType,
		Data:    design,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure design directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write design file: %w", err)
	}
	return nil
}

// Load reads the design file at path. It validates the envelope type
// and file format version before decoding the payload.
func (s *Store) Load(ctx context.Context, path string) (*domain.Design, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to read design file: %w", err)
	}

	var env envelope
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse design file %s: %w", path, err)
	}

	if env.Type != designFileType {
		return nil, fmt.Errorf("%s is not a motor design file (type %q)", path, env.Type)
	}
	if !compatibleVersion(env.Version) {
		return nil, fmt.Errorf("%w: file is %q, supported is %q", domain.ErrVersionMismatch, env.Version, FileVersion)
	}

	design := domain.NewDesign()
	if err := decodePayload(env.Data, design); err != nil {
		return nil, fmt.Errorf("failed to decode design file %s: %w", path, err)
	}
	return design, nil
}

// decodePayload maps the generic YAML payload onto a typed value.
// Weak typing is required: YAML writes whole floats back as ints.
func decodePayload(data any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}

// compatibleVersion accepts files whose major version matches ours.
func compatibleVersion(v string) bool {
	return major(v) == major(FileVersion)
}

func major(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}
