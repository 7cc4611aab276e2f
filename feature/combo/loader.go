package combo

import (
	"levelcode/core/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the combo feature.
func NewFeature(manifest *catalog.Manifest, names map[string]string, cache *catalog.Cache, searcher CodeSearcher, logger *zap.Logger) *Feature {
	svc := NewService(manifest, names, cache, searcher, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "combo"
}

// IsEnabled reports whether any mode is configured.
func (f *Feature) IsEnabled() bool {
	return len(f.service.manifest.Modes) > 0
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
