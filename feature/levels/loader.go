package levels

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the levels feature from a service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service, handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "levels"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the custom level table when a database is connected and
// registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.service.db != nil {
		if err := f.service.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
