package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func UpdateFarmer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FarmerUpdateRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("farmerUpdateRequest", input)
		return c.Next()
	}
}

func ChangeFarmerStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeFarmerStatusRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("changeFarmerStatus", input)
		return c.Next()
	}
}
