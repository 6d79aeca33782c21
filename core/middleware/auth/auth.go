package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty lets every request through.
	ApiKey string
	// Public lists exact paths that never require a key.
	Public []string
}

// New returns a middleware rejecting requests without a matching X-API-Key.
func New(cfg Config) fiber.Handler {
	public := make(map[string]struct{}, len(cfg.Public))
	for _, p := range cfg.Public {
		public[p] = struct{}{}
	}
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if _, ok := public[c.Path()]; ok {
			return c.Next()
		}

		key := c.Get(Header)
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing API key"})
		}
		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid API key"})
		}
		return c.Next()
	}
}
