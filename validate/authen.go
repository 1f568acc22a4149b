package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("registerRequest", input)
		return c.Next()
	}
}

func VerifyRegister() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyRegisterRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("verifyRegisterRequest", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("loginRequest", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangePasswordRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("changePasswordRequest", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("forgotPasswordRequest", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordRequest
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("resetPasswordRequest", input)
		return c.Next()
	}
}
