package search

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the search feature. It is disabled without a backend URL.
func NewFeature(backend Backend, baseURL string, logger *zap.Logger) *Feature {
	svc := NewService(backend, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: baseURL != ""}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "search"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
