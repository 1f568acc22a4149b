package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func CartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CartItemRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("cartItemRequest", input)
		return c.Next()
	}
}
