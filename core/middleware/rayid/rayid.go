package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// LocalsKey is where the ray id is stored on the fiber context.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a ray id.
// A well-formed UUID sent by the client is reused, anything else is replaced.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
