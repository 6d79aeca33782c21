package loader_test

import (
	"errors"
	"testing"

	"cookie-importer/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "importer", enabled: true}
	off := &stubFeature{name: "disabled"}

	mgr := loader.NewManager()
	mgr.Register(on)
	mgr.Register(off)

	loaded, err := mgr.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"importer"}, loaded)
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	boom := errors.New("route conflict")
	broken := &stubFeature{name: "broken", enabled: true, err: boom}
	after := &stubFeature{name: "after", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "broken")
	assert.Empty(t, loaded)
	assert.False(t, after.loaded)
}
