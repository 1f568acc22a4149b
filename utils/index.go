package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorResponse trả về envelope lỗi thống nhất {code, message, error}.
// code là mã ngắn ổn định cho client rẽ nhánh (vd: order-e-02).
func ErrorResponse(c *fiber.Ctx, status int, code string, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"code":    code,
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, code string, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
