package rayid

import (
	"levelcode/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// New returns a middleware assigning every request a ray id. An incoming
// X-Ray-ID header is kept; otherwise a new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}

// FromCtx returns the ray id of the request, if any.
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(logger.RayIDKey).(string)
	return id
}
