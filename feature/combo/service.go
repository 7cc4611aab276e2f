package combo

import (
	"context"
	"errors"
	"fmt"

	"levelcode/core/catalog"
	"levelcode/core/extract"
	"levelcode/core/remote"
	"levelcode/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrUnknownMode is returned for a mode id missing from the manifest.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrSelectionCount is returned when the selection size is out of range.
	ErrSelectionCount = errors.New("invalid number of selected items")
)

const (
	SourceCatalog = "catalog"
	SourceRemote  = "remote"
)

// CodeSearcher resolves a keyword through the code search backend.
type CodeSearcher interface {
	Search(ctx context.Context, keyword string) (*remote.Code, error)
}

// Item is a selectable identifier of a mode.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// ModeDetail is a mode with its selectable items in pool order.
type ModeDetail struct {
	catalog.Mode
	Items []Item `json:"items"`
}

// Code is a generated code for one selection.
type Code struct {
	Mode    string          `json:"mode"`
	Key     string          `json:"key"`
	Source  string          `json:"source"`
	Payload extract.Payload `json:"payload"`
	Text    string          `json:"text"`
}

// Service generates codes for combinations of items.
type Service struct {
	manifest *catalog.Manifest
	names    map[string]string
	cache    *catalog.Cache
	searcher CodeSearcher
	logger   *zap.Logger
}

// NewService creates a combo service. names maps identifiers to display names.
func NewService(manifest *catalog.Manifest, names map[string]string, cache *catalog.Cache, searcher CodeSearcher, logger *zap.Logger) *Service {
	if names == nil {
		names = map[string]string{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		manifest: manifest,
		names:    names,
		cache:    cache,
		searcher: searcher,
		logger:   logger,
	}
}

// Modes lists every configured mode.
func (s *Service) Modes() []catalog.Mode {
	return append([]catalog.Mode(nil), s.manifest.Modes...)
}

// Mode returns a mode with its items.
func (s *Service) Mode(id string) (*ModeDetail, error) {
	mode, ok := s.manifest.Mode(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, id)
	}

	ids := mode.Pool().IDs()
	items := make([]Item, len(ids))
	for i, itemID := range ids {
		items[i] = Item{ID: itemID, Name: s.name(itemID), Position: i}
	}
	return &ModeDetail{Mode: mode, Items: items}, nil
}

// Generate returns the code for the selected identifiers of a mode.
// The selection order does not matter; unknown and repeated identifiers are
// ignored before the count is checked.
func (s *Service) Generate(ctx context.Context, modeID string, selected []string) (*Code, error) {
	mode, ok := s.manifest.Mode(modeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, modeID)
	}

	pool := mode.Pool()
	ids := pool.Canonical(selected)
	if !mode.AcceptsCount(len(ids)) {
		if mode.Exact() {
			return nil, fmt.Errorf("%w: select exactly %d, got %d", ErrSelectionCount, mode.MinSelect, len(ids))
		}
		return nil, fmt.Errorf("%w: select %d to %d, got %d", ErrSelectionCount, mode.MinSelect, mode.MaxSelect, len(ids))
	}
	key := pool.Key(ids)

	code := &Code{Mode: mode.ID, Key: key}
	if mode.Remote {
		found, err := s.searcher.Search(ctx, key)
		if err != nil {
			return nil, err
		}
		code.Source = SourceRemote
		code.Payload = found.Payload
	} else {
		payload, err := s.cache.Get(ctx, mode.ID, mode.File).Lookup(key)
		if err != nil {
			return nil, err
		}
		code.Source = SourceCatalog
		code.Payload = payload
	}

	text, err := utils.PrettyJSON(code.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to render code: %w", err)
	}
	code.Text = text

	s.logger.Debug("Code generated",
		zap.String("mode", mode.ID),
		zap.String("key", key),
		zap.String("source", code.Source),
	)
	return code, nil
}

func (s *Service) name(id string) string {
	if n, ok := s.names[id]; ok && n != "" {
		return n
	}
	return catalog.UnknownName
}
