package locales

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestFeature(t *testing.T) {
	svc, _ := setupService(t, nil)
	f := NewFeature(svc, NewHandler(svc, 0))

	assert.Equal(t, "locales", f.Name())
	assert.True(t, f.IsEnabled())

	app := fiber.New()
	assert.NoError(t, f.Load(app))

	var paths []string
	for _, r := range app.GetRoutes() {
		paths = append(paths, r.Method+" "+r.Path)
	}
	assert.Contains(t, paths, "GET /locales/:locale/keys")
	assert.Contains(t, paths, "POST /locales/:locale/reconcile")
}

func TestFeature_DisabledWithoutService(t *testing.T) {
	assert.False(t, NewFeature(nil, nil).IsEnabled())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 400, StatusFor(ErrInvalidLocale))
	assert.Equal(t, 400, StatusFor(ErrMissingArgument))
	assert.Equal(t, 500, StatusFor(assert.AnError))
}
