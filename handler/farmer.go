package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

func toFarmerResponse(farmer *model.Farmer) model.FarmerResponse {
	var response model.FarmerResponse
	if err := copier.Copy(&response, farmer); err != nil {
		log.Printf("Lỗi map farmer response: %v", err)
	}
	return response
}

// GetMyFarmer trả hồ sơ nông trại của tài khoản hiện tại
func GetMyFarmer(c *fiber.Ctx) error {
	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "farmer-s-01", "Get farmer successfully", toFarmerResponse(farmer))
}

// GetFarmerById hồ sơ công khai của một nông trại
func GetFarmerById(c *fiber.Ctx) error {
	farmerId, err := strconv.Atoi(c.Params("farmerId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "farmer-e-01", "Farmer not found", err)
	}

	var farmer model.Farmer
	if err := database.DB.First(&farmer, "id = ?", farmerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "farmer-s-02", "Get farmer successfully", toFarmerResponse(&farmer))
}

// UpdateFarmer cập nhật hồ sơ nông trại, chỉ chủ nông trại
func UpdateFarmer(c *fiber.Ctx) error {
	input, ok := c.Locals("farmerUpdateRequest").(model.FarmerUpdateRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "farmer-e-02", "Invalid input", errors.New("missing input"))
	}

	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&model.Farmer{}).Where("id = ?", farmer.ID).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "farmer-e-99", constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := database.DB.First(farmer, "id = ?", farmer.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "farmer-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "farmer-s-03", "Update farmer successfully", toFarmerResponse(farmer))
}

// GetAllFarmers danh sách nông trại, chỉ cho ADMIN
func GetAllFarmers(c *fiber.Ctx) error {
	var farmers []model.Farmer
	if err := database.DB.Order("created_at desc").Find(&farmers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "farmer-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.FarmerResponse, 0, len(farmers))
	for i := range farmers {
		response = append(response, toFarmerResponse(&farmers[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "farmer-s-04", "Get all farmer successfully", response)
}

// ChangeFarmerStatus ADMIN khóa / mở khóa một nông trại
func ChangeFarmerStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("changeFarmerStatus").(model.ChangeFarmerStatusRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "farmer-e-02", "Invalid input", errors.New("missing input"))
	}

	var farmer model.Farmer
	if err := database.DB.First(&farmer, "id = ?", input.FarmerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	if err := database.DB.Model(&model.Farmer{}).Where("id = ?", farmer.ID).
		Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "farmer-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	farmer.Status = input.Status

	return utils.SuccessResponse(c, fiber.StatusOK, "farmer-s-05", "Change farmer status successfully", toFarmerResponse(&farmer))
}
