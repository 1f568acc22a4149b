package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

// UploadImage nhận multipart file "image", đẩy lên Cloudinary và trả URL
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "upload-e-01", "Image file is required", err)
	}

	folder := c.Query("folder", "agricultural")

	url, err := helper.UploadImage(c.Context(), file, folder)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "upload-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "upload-s-01", "Upload image successfully", fiber.Map{"url": url})
}
