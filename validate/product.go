package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ProductRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("productRequest", input)
		return c.Next()
	}
}

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ProductUpdateRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("productUpdateRequest", input)
		return c.Next()
	}
}

func ChangeProductStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeProductStatusRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("changeProductStatus", input)
		return c.Next()
	}
}

func ResubmitOcop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OcopRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("ocopRequest", input)
		return c.Next()
	}
}

func RejectOcop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OcopRejectRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("ocopRejectRequest", input)
		return c.Next()
	}
}
