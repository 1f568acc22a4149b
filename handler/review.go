package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
)

// CreateReview người mua đánh giá sản phẩm từ đơn đã RECEIVED,
// rating sản phẩm được tính lại theo trung bình các review
func CreateReview(c *fiber.Ctx) error {
	input, ok := c.Locals("reviewRequest").(model.ReviewRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "review-e-00", "Invalid input", errors.New("missing input"))
	}

	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var order model.Order
	if err := database.DB.First(&order, "id = ? AND account_id = ?", input.OrderId, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}
	if order.Status != constants.ORDER_RECEIVED {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "review-e-01", "Only received orders can be reviewed", nil)
	}

	var review model.Review
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		review = model.Review{
			Content:   input.Content,
			Rating:    input.Rating,
			Image:     input.Image,
			ProductId: input.ProductId,
			OrderId:   order.ID,
			AccountId: claim.AccountId,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		// Cập nhật rating trung bình của sản phẩm
		return tx.Model(&model.Product{}).Where("id = ?", input.ProductId).
			Update("rating", tx.Model(&model.Review{}).
				Select("AVG(rating)").
				Where("product_id = ?", input.ProductId)).Error
	})
	if txErr != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "review-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "review-s-01", "Create review successfully", review)
}

// GetReviewsByProduct đánh giá của một sản phẩm, mới nhất trước
func GetReviewsByProduct(c *fiber.Ctx) error {
	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	var reviews []model.Review
	if err := database.DB.Where("product_id = ?", productId).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "review-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "review-s-02", "Get reviews successfully", reviews)
}
