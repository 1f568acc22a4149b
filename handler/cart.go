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

// AddCartItem thêm sản phẩm vào giỏ, trùng sản phẩm thì cộng dồn số lượng
func AddCartItem(c *fiber.Ctx) error {
	input, ok := c.Locals("cartItemRequest").(model.CartItemRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cart-item-e-00", "Invalid input", errors.New("missing input"))
	}

	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ?", input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "product-e-01", "Product not found", err)
	}

	var cartItem model.CartItem
	err = database.DB.First(&cartItem, "account_id = ? AND product_id = ?", claim.AccountId, product.ID).Error
	switch {
	case err == nil:
		if err := database.DB.Model(&model.CartItem{}).Where("id = ?", cartItem.ID).
			Update("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, err)
		}
		cartItem.Quantity += input.Quantity
	case errors.Is(err, gorm.ErrRecordNotFound):
		cartItem = model.CartItem{
			Quantity:  input.Quantity,
			AccountId: claim.AccountId,
			ProductId: product.ID,
		}
		if err := database.DB.Create(&cartItem).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, err)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	cartItem.Product = product
	return utils.SuccessResponse(c, fiber.StatusOK, "cart-item-s-01", "Add cart item successfully", cartItem)
}

// GetCartItems giỏ hàng của tài khoản hiện tại, mới nhất trước
func GetCartItems(c *fiber.Ctx) error {
	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var cartItems []model.CartItem
	if err := database.DB.Preload("Product").
		Where("account_id = ?", claim.AccountId).
		Order("created_at desc").
		Find(&cartItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "cart-item-s-02", "Get cart items successfully", cartItems)
}

// UpdateCartItem đặt lại số lượng một dòng trong giỏ
func UpdateCartItem(c *fiber.Ctx) error {
	input, ok := c.Locals("cartItemRequest").(model.CartItemRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cart-item-e-00", "Invalid input", errors.New("missing input"))
	}

	cartItemId, err := strconv.Atoi(c.Params("cartItemId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cart-item-e-01", "Cart item not found", err)
	}

	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var cartItem model.CartItem
	if err := database.DB.First(&cartItem, "id = ? AND account_id = ?", cartItemId, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "cart-item-e-01", "Cart item not found", err)
	}

	if err := database.DB.Model(&model.CartItem{}).Where("id = ?", cartItem.ID).
		Update("quantity", input.Quantity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	cartItem.Quantity = input.Quantity

	return utils.SuccessResponse(c, fiber.StatusOK, "cart-item-s-03", "Update cart item successfully", cartItem)
}

// DeleteCartItem bỏ một dòng khỏi giỏ
func DeleteCartItem(c *fiber.Ctx) error {
	cartItemId, err := strconv.Atoi(c.Params("cartItemId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cart-item-e-01", "Cart item not found", err)
	}

	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	result := database.DB.Delete(&model.CartItem{}, "id = ? AND account_id = ?", cartItemId, claim.AccountId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cart-item-e-99", constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "cart-item-e-01", "Cart item not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "cart-item-s-04", "Delete cart item successfully", nil)
}
