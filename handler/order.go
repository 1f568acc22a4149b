package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func toOrderResponse(order *model.Order) model.OrderResponse {
	var response model.OrderResponse
	if err := copier.Copy(&response, order); err != nil {
		log.Printf("Lỗi map order response: %v", err)
	}
	return response
}

// CreateOrder tạo đơn từ các cart item đã chọn: chốt giá, trừ kho (có clamp),
// xóa cart item đã dùng — tất cả trong một transaction.
func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("orderRequest").(model.OrderRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-00", "Invalid order input", errors.New("missing input"))
	}

	account, err := helper.GetAccount(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	if input.PaymentMethod != constants.PAYMENT_METHOD_COD && input.PaymentMethod != constants.PAYMENT_METHOD_VNPAY {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-01", "Invalid payment method", errors.New("payment method must be COD or VNPAY"))
	}

	db := database.DB

	var address model.Address
	if err := db.First(&address, "id = ? AND account_id = ?", input.AddressId, account.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "address-e-01", "Address not found", err)
	}

	var farmer model.Farmer
	if err := db.First(&farmer, "id = ?", input.FarmerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var order model.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		items := make([]model.OrderItem, 0, len(input.CartItemIds))

		for _, cartItemId := range input.CartItemIds {
			var cartItem model.CartItem
			if err := tx.First(&cartItem, "id = ? AND account_id = ?", cartItemId, account.ID).Error; err != nil {
				return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "cart-item-e-01", Message: "Cart item not found"}
			}

			// Khóa dòng sản phẩm: hai đơn cùng lúc không được trừ kho chồng nhau
			var product model.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", cartItem.ProductId).Error; err != nil {
				return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "product-e-01", Message: "Product not found"}
			}

			quantity := helper.ClampQuantity(cartItem.Quantity, product.Inventory)
			if err := tx.Model(&model.Product{}).Where("id = ?", product.ID).
				Update("inventory", gorm.Expr("inventory - ?", quantity)).Error; err != nil {
				return err
			}

			items = append(items, model.OrderItem{
				ProductId: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
			})

			if err := tx.Delete(&model.CartItem{}, "id = ?", cartItem.ID).Error; err != nil {
				return err
			}
		}

		totalPrice, totalQuantity := helper.ComputeTotals(items)

		order = model.Order{
			TotalPrice:    totalPrice,
			TotalQuantity: totalQuantity,
			Note:          input.Note,
			Status:        constants.ORDER_PENDING,
			PaymentStatus: constants.PAYMENT_PENDING,
			PaymentMethod: input.PaymentMethod,
			AddressId:     address.ID,
			AccountId:     account.ID,
			FarmerId:      farmer.ID,
			Items:         items,
		}
		return tx.Create(&order).Error
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "order-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "order-s-01", "Create order successfully", toOrderResponse(&order))
}

// GetMyOrders liệt kê đơn của người mua hiện tại, mới nhất trước
func GetMyOrders(c *fiber.Ctx) error {
	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var orders []model.Order
	if err := database.DB.Preload("Items").
		Where("account_id = ?", claim.AccountId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "order-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "order-s-02", "Get all order successfully", response)
}

// GetOrderById trả chi tiết đơn kèm QR mã đơn để đối soát khi giao nhận
func GetOrderById(c *fiber.Ctx) error {
	orderId, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-01", "Order not found", err)
	}

	var order model.Order
	if err := database.DB.Preload("Items").Preload("Payment").First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}

	response := toOrderResponse(&order)

	qrBytes, err := utils.GenerateQRCode(fmt.Sprintf("ORDER-%d", order.ID), 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn hàng %d: %v", order.ID, err)
	} else {
		response.QrCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "order-s-03", "Get order successfully", response)
}

// GetOrdersByFarmer liệt kê đơn đổ về nông trại của tài khoản hiện tại
func GetOrdersByFarmer(c *fiber.Ctx) error {
	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var orders []model.Order
	if err := database.DB.Preload("Items").
		Where("farmer_id = ?", farmer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "order-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "order-s-03", "Get all order by farmer successfully", response)
}

func changeStatus(c *fiber.Ctx, check func(current, requested string) *helper.TransitionError, successCode string) error {
	input, ok := c.Locals("changeOrderStatus").(model.ChangeOrderStatusRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-00", "Invalid order input", errors.New("missing input"))
	}

	db := database.DB
	var order model.Order

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// Khóa dòng đơn để hai yêu cầu đổi trạng thái không chen nhau
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Items").
			First(&order, "id = ?", input.OrderId).Error; err != nil {
			return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "order-e-01", Message: "Order not found"}
		}

		if te := check(order.Status, input.Status); te != nil {
			return te
		}

		return helper.ApplyTransition(tx, &order, input.Status, input.Reason)
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "order-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	// Báo người mua qua email, không chặn response
	var account model.Account
	if err := db.First(&account, "id = ?", order.AccountId).Error; err == nil {
		utils.SendOrderStatusEmail(account.Email, utils.OrderEmailData{
			OrderId:       order.ID,
			TotalPrice:    order.TotalPrice,
			TotalQuantity: order.TotalQuantity,
			Status:        order.Status,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, successCode, "Change order status successfully", toOrderResponse(&order))
}

// ConsumerChangeStatus người mua hủy đơn hoặc xác nhận đã nhận hàng
func ConsumerChangeStatus(c *fiber.Ctx) error {
	return changeStatus(c, helper.CheckConsumerTransition, "order-s-04")
}

// FarmerChangeStatus người bán xác nhận / giao / hoàn tất / hủy đơn
func FarmerChangeStatus(c *fiber.Ctx) error {
	return changeStatus(c, helper.CheckFarmerTransition, "order-s-05")
}
