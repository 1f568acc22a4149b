package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OrderRequest
		if !parseBody(c, &input) {
			return nil
		}
		if len(input.CartItemIds) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Danh sách cart item không được để trống"})
		}
		c.Locals("orderRequest", input)
		return c.Next()
	}
}

func ChangeOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeOrderStatusRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("changeOrderStatus", input)
		return c.Next()
	}
}
