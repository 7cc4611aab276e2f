package levels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"levelcode/core/catalog"
	"levelcode/core/utils"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var (
	// ErrLevelExists is returned when a custom level name is taken.
	ErrLevelExists = errors.New("level name already exists")
	// ErrInvalidLevel is returned for an empty name or a code that is not a JSON object.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrStoreUnavailable is returned when custom levels cannot be stored.
	ErrStoreUnavailable = errors.New("custom level store unavailable")
)

// Service lists built-in levels and manages custom ones.
type Service struct {
	db         *gorm.DB
	source     catalog.Source
	levelsFile string
	schema     *jsonschema.Schema
	logger     *zap.Logger
}

// NewService creates a levels service. db may be nil, in which case only
// built-in levels are served.
func NewService(db *gorm.DB, source catalog.Source, levelsFile string, logger *zap.Logger) (*Service, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:         db,
		source:     source,
		levelsFile: levelsFile,
		schema:     schema,
		logger:     logger,
	}, nil
}

// Migrate creates the custom level table.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	return s.db.AutoMigrate(&CustomLevel{})
}

// List returns custom levels first, then built-in levels, optionally
// filtered by a case-insensitive name fragment.
func (s *Service) List(ctx context.Context, query string) ([]Level, error) {
	custom, err := s.custom(ctx)
	if err != nil {
		return nil, err
	}

	levels := append(custom, s.builtin(ctx)...)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return levels, nil
	}
	filtered := make([]Level, 0, len(levels))
	for _, l := range levels {
		if strings.Contains(strings.ToLower(l.Name), query) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Save stores a custom level. The code is normalized to indented JSON.
func (s *Service) Save(ctx context.Context, name, code string) (*Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidLevel)
	}
	obj, err := parseCode(s.schema, code)
	if err != nil {
		return nil, err
	}
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	text, err := utils.PrettyJSON(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to render level: %w", err)
	}

	db := s.db.WithContext(ctx)
	var count int64
	if err := db.Model(&CustomLevel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check level name: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrLevelExists, name)
	}

	if err := db.Create(&CustomLevel{Name: name, Code: text}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrLevelExists, name)
		}
		return nil, fmt.Errorf("failed to save level: %w", err)
	}

	s.logger.Info("Custom level saved", zap.String("name", name))
	return &Level{Name: name, Code: text, Custom: true}, nil
}

func (s *Service) custom(ctx context.Context) ([]Level, error) {
	if s.db == nil {
		return []Level{}, nil
	}

	var rows []CustomLevel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load custom levels: %w", err)
	}

	levels := make([]Level, len(rows))
	for i, r := range rows {
		levels[i] = Level{Name: r.Name, Code: r.Code, Custom: true}
	}
	return levels, nil
}

// builtin reads the levels file in file order. Any failure is logged and
// yields no built-in levels.
func (s *Service) builtin(ctx context.Context) []Level {
	if s.levelsFile == "" || s.source == nil {
		return nil
	}

	levels, err := s.readBuiltin(ctx)
	if err != nil {
		s.logger.Error("Built-in levels unavailable",
			zap.String("file", s.levelsFile),
			zap.Error(err),
		)
		return nil
	}
	return levels
}

func (s *Service) readBuiltin(ctx context.Context) ([]Level, error) {
	data, err := s.source.ReadFile(ctx, s.levelsFile)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s is not valid JSON", s.levelsFile)
	}

	// JSON is valid YAML; a yaml.Node keeps the object's key order.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.levelsFile, err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s is not a JSON object", s.levelsFile)
	}

	pairs := root.Content[0].Content
	levels := make([]Level, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].Value
		var value map[string]any
		if err := pairs[i+1].Decode(&value); err != nil {
			s.logger.Warn("Skipping built-in level", zap.String("name", name), zap.Error(err))
			continue
		}
		text, err := utils.PrettyJSON(value)
		if err != nil {
			s.logger.Warn("Skipping built-in level", zap.String("name", name), zap.Error(err))
			continue
		}
		levels = append(levels, Level{Name: name, Code: text})
	}
	return levels, nil
}
