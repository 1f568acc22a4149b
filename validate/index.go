package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

var validate = validator.New()

// parseBody parse JSON body vào input rồi chạy validator.
// Trả về false nếu đã ghi response lỗi 400, caller dừng chain tại đó.
func parseBody(c *fiber.Ctx, input any) bool {
	if err := c.BodyParser(input); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid input %s", err.Error()),
		})
		return false
	}
	if err := validate.Struct(input); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return false
	}
	return true
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if !parseBody(c, &input) {
			return nil
		}

		if len(input.IDs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mảng ID cần xoá không được để trống"})
		}

		// Save input to context locals
		c.Locals("deleteIds", input)

		// Continue to next handler
		return c.Next()
	}
}
