package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a module that mounts routes on the application.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Manager holds the registry of features in registration order.
type Manager struct {
	features []Feature
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds f to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature in registration order and returns the
// names of those loaded. It stops at the first failure.
func (m *Manager) LoadAll(app fiber.Router) ([]string, error) {
	var loaded []string
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return loaded, fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		loaded = append(loaded, f.Name())
	}
	return loaded, nil
}
