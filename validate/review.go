package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReviewRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("reviewRequest", input)
		return c.Next()
	}
}
