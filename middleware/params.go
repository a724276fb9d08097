package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ValidateID coerces a path parameter to a numeric identifier before it
// reaches a controller. Controllers read the converted value from Locals.
func ValidateID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return Error(c, fiber.StatusBadRequest, "El identificador '"+raw+"' no es válido.")
		}
		c.Locals(param, uint(id))
		return c.Next()
	}
}
