package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func UpdateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAccountRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("updateAccountRequest", input)
		return c.Next()
	}
}

func UpgradeToFarmer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpgradeToFarmerRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("upgradeToFarmerRequest", input)
		return c.Next()
	}
}

func CreateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddressRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("addressRequest", input)
		return c.Next()
	}
}
