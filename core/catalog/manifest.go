package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// UnknownName is shown for identifiers without a display name.
const UnknownName = "unknown"

// Manifest describes the catalog files and selectable modes.
type Manifest struct {
	NamesFile  string            `yaml:"names_file"`
	SkipNames  []string          `yaml:"skip_names"`
	Names      map[string]string `yaml:"names"`
	LevelsFile string            `yaml:"levels_file"`
	Modes      []Mode            `yaml:"modes"`
}

// Mode is one combination generator: a pool of identifiers, how many may be
// selected, and where the codes come from.
type Mode struct {
	ID          string   `yaml:"id" json:"id"`
	DisplayName string   `yaml:"display_name" json:"display_name"`
	Description string   `yaml:"description" json:"description"`
	File        string   `yaml:"file" json:"-"`
	MinSelect   int      `yaml:"min_select" json:"min_select"`
	MaxSelect   int      `yaml:"max_select" json:"max_select"`
	Remote      bool     `yaml:"remote" json:"remote"`
	Items       []string `yaml:"pool" json:"-"`
}

// Pool returns the mode's reference ordering.
func (m Mode) Pool() Pool {
	return NewPool(m.Items)
}

// Exact reports whether the mode requires a fixed number of selections.
func (m Mode) Exact() bool {
	return m.MinSelect == m.MaxSelect
}

// AcceptsCount reports whether n selections are allowed.
func (m Mode) AcceptsCount(n int) bool {
	return n >= m.MinSelect && n <= m.MaxSelect
}

// Validate checks the mode definition.
func (m Mode) Validate() error {
	switch {
	case m.ID == "":
		return errors.New("missing id")
	case len(m.Items) == 0:
		return fmt.Errorf("mode %s: empty pool", m.ID)
	case m.File == "" && !m.Remote:
		return fmt.Errorf("mode %s: missing file", m.ID)
	case m.MinSelect < 1 || m.MinSelect > m.MaxSelect:
		return fmt.Errorf("mode %s: invalid selection range %d..%d", m.ID, m.MinSelect, m.MaxSelect)
	case m.MaxSelect > m.Pool().Len():
		return fmt.Errorf("mode %s: max_select %d exceeds pool size %d", m.ID, m.MaxSelect, m.Pool().Len())
	}
	return nil
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses the manifest stored at name in src.
func LoadManifest(ctx context.Context, src Source, name string) (*Manifest, error) {
	data, err := src.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return ParseManifest(data)
}

// Validate checks every mode and rejects duplicate mode ids.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Modes))
	for _, mode := range m.Modes {
		if err := mode.Validate(); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		if _, dup := seen[mode.ID]; dup {
			return fmt.Errorf("invalid manifest: duplicate mode %s", mode.ID)
		}
		seen[mode.ID] = struct{}{}
	}
	return nil
}

// Mode returns the mode with the given id.
func (m *Manifest) Mode(id string) (Mode, bool) {
	for _, mode := range m.Modes {
		if mode.ID == id {
			return mode, true
		}
	}
	return Mode{}, false
}

// CatalogFiles maps each locally served mode to its catalog file.
func (m *Manifest) CatalogFiles() map[string]string {
	files := make(map[string]string)
	for _, mode := range m.Modes {
		if mode.Remote {
			continue
		}
		files[mode.ID] = mode.File
	}
	return files
}

// Files lists every file the manifest references.
func (m *Manifest) Files() []string {
	var files []string
	if m.NamesFile != "" {
		files = append(files, m.NamesFile)
	}
	if m.LevelsFile != "" {
		files = append(files, m.LevelsFile)
	}
	for _, mode := range m.Modes {
		if mode.File != "" {
			files = append(files, mode.File)
		}
	}
	return files
}

// LoadNames builds the id -> display name table from the names file and the
// inline names. Inline names win. Non-string values and skipped keys are
// ignored. When the names file cannot be used the inline names are still
// returned together with the error.
func (m *Manifest) LoadNames(ctx context.Context, src Source) (map[string]string, error) {
	names, err := m.fileNames(ctx, src)
	if names == nil {
		names = make(map[string]string, len(m.Names))
	}

	for id, name := range m.Names {
		names[id] = name
	}
	return names, err
}

func (m *Manifest) fileNames(ctx context.Context, src Source) (map[string]string, error) {
	if m.NamesFile == "" {
		return nil, nil
	}

	data, err := src.ReadFile(ctx, m.NamesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load names: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", m.NamesFile, err)
	}

	skip := make(map[string]struct{}, len(m.SkipNames))
	for _, k := range m.SkipNames {
		skip[k] = struct{}{}
	}

	names := make(map[string]string, len(raw))
	for id, v := range raw {
		if _, ok := skip[id]; ok {
			continue
		}
		if name, ok := v.(string); ok {
			names[id] = name
		}
	}
	return names, nil
}
