package locales

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the locales feature around an existing service.
func NewFeature(svc *Service, handler *Handler) *Feature {
	return &Feature{service: svc, handler: handler}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "locales"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
