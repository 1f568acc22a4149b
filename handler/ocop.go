package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
)

// GetPendingOcopProducts danh sách sản phẩm chờ duyệt OCOP, chỉ cho ADMIN
func GetPendingOcopProducts(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
		Joins("JOIN ocops ON ocops.product_id = products.id").
		Where("ocops.status = ?", constants.OCOP_PENDING_VERIFY).
		Order("products.created_at desc").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "ocop-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "ocop-s-01", "Get pending OCOP products successfully", toProductResponses(products))
}

// moderateOcop duyệt / từ chối chung: chỉ hồ sơ PENDING_VERIFY mới được xử lý,
// lưu lại ai duyệt và lúc nào
func moderateOcop(c *fiber.Ctx, productId uint, newStatus, reason, successCode, successMessage string) error {
	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var product model.Product
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
			First(&product, "id = ?", productId).Error; err != nil {
			return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "product-e-01", Message: "Product not found"}
		}
		if product.Ocop == nil {
			return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "ocop-e-02", Message: "OCOP information not found for this product"}
		}
		if product.Ocop.Status != constants.OCOP_PENDING_VERIFY {
			return &helper.TransitionError{HttpStatus: fiber.StatusBadRequest, Code: "ocop-e-04", Message: "OCOP status is not PENDING_VERIFY"}
		}

		now := time.Now()
		if err := tx.Model(&model.Ocop{}).Where("id = ?", product.Ocop.ID).Updates(map[string]interface{}{
			"status":      newStatus,
			"reason":      reason,
			"verified_by": claim.AccountId,
			"verified_at": now,
		}).Error; err != nil {
			return err
		}

		product.Ocop.Status = newStatus
		product.Ocop.Reason = reason
		product.Ocop.VerifiedBy = &claim.AccountId
		product.Ocop.VerifiedAt = &now
		return nil
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "ocop-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, successCode, successMessage, toProductResponse(&product))
}

// ApproveOcop ADMIN chứng nhận hồ sơ OCOP của sản phẩm
func ApproveOcop(c *fiber.Ctx) error {
	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}
	return moderateOcop(c, uint(productId), constants.OCOP_VERIFIED, "", "ocop-s-02", "Approve OCOP successfully")
}

// RejectOcop ADMIN từ chối hồ sơ OCOP kèm lý do, nông trại có thể nộp lại
func RejectOcop(c *fiber.Ctx) error {
	input, ok := c.Locals("ocopRejectRequest").(model.OcopRejectRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "ocop-e-00", "Invalid input", errors.New("missing input"))
	}
	return moderateOcop(c, input.ProductId, constants.OCOP_REJECTED, input.Reason, "ocop-s-03", "Reject OCOP successfully")
}
