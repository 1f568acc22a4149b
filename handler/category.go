package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

// GetCategories danh mục công khai cho trang chủ và form đăng sản phẩm
func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "category-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "category-s-01", "Get categories successfully", categories)
}

// CreateCategory ADMIN thêm danh mục
func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("categoryRequest").(model.CategoryRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category-e-01", "Invalid input", errors.New("missing input"))
	}

	category := model.Category{Name: input.Name, ParentId: input.ParentId}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "category-e-01", "Category has existed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "category-s-02", "Create category successfully", category)
}

// UpdateCategory ADMIN đổi tên / chuyển cha danh mục
func UpdateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("categoryRequest").(model.CategoryRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category-e-01", "Invalid input", errors.New("missing input"))
	}

	categoryId, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category-e-02", "Category not found", err)
	}

	var category model.Category
	if err := database.DB.First(&category, "id = ?", categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category-e-02", "Category not found", err)
	}

	category.Name = input.Name
	category.ParentId = input.ParentId
	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "category-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "category-s-03", "Update category successfully", category)
}

// DeleteCategory ADMIN xóa danh mục chưa có sản phẩm
func DeleteCategory(c *fiber.Ctx) error {
	categoryId, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category-e-02", "Category not found", err)
	}

	var count int64
	if err := database.DB.Model(&model.Product{}).Where("category_id = ?", categoryId).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "category-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "category-e-03", "Category still has products", nil)
	}

	result := database.DB.Delete(&model.Category{}, "id = ?", categoryId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "category-e-99", constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category-e-02", "Category not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "category-s-04", "Delete category successfully", nil)
}
