package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func CreateMarketPrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MarketPriceCreationRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("marketPriceCreationRequest", input)
		return c.Next()
	}
}

func UpdateMarketPrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MarketPriceUpdateRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("marketPriceUpdateRequest", input)
		return c.Next()
	}
}
