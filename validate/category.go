package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CategoryRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("categoryRequest", input)
		return c.Next()
	}
}
