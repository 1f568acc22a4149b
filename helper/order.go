package helper

import (
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/model"
	"gorm.io/gorm"
)

// TransitionError mô tả một yêu cầu đổi trạng thái bị từ chối
type TransitionError struct {
	HttpStatus int
	Code       string
	Message    string
}

func (e *TransitionError) Error() string {
	return e.Message
}

func forbidden(code, message string) *TransitionError {
	return &TransitionError{HttpStatus: 403, Code: code, Message: message}
}

// CheckConsumerTransition kiểm tra người mua có được đổi đơn từ current sang requested không.
// Người mua chỉ được yêu cầu CANCELED hoặc RECEIVED.
func CheckConsumerTransition(current, requested string) *TransitionError {
	if requested != constants.ORDER_CANCELED && requested != constants.ORDER_RECEIVED {
		return forbidden("order-e-02", "You don't have permission to edit order to this status.")
	}
	if requested == constants.ORDER_CANCELED && current == constants.ORDER_RECEIVED {
		return forbidden("order-e-05", "Cannot cancel an order that has been received.")
	}
	// CANCELED là trạng thái cuối: hủy lần hai sẽ cộng trả tồn kho trùng
	if requested == constants.ORDER_CANCELED && current == constants.ORDER_CANCELED {
		return forbidden("order-e-05", "Order has already been canceled.")
	}
	if requested == constants.ORDER_RECEIVED && current != constants.ORDER_DELIVERED {
		return forbidden("order-e-06", "Order must be in DELIVERED status to receive.")
	}
	return nil
}

// CheckFarmerTransition kiểm tra người bán có được đổi đơn từ current sang requested không.
// Người bán được yêu cầu CONFIRMED, DELIVERING, DELIVERED hoặc CANCELED.
func CheckFarmerTransition(current, requested string) *TransitionError {
	switch requested {
	case constants.ORDER_CONFIRMED:
		if current != constants.ORDER_PENDING {
			return forbidden("order-e-03", "Order must be in PENDING status to confirm.")
		}
	case constants.ORDER_DELIVERING:
		if current != constants.ORDER_CONFIRMED {
			return forbidden("order-e-04", "Order must be in CONFIRMED status to deliver.")
		}
	case constants.ORDER_DELIVERED:
		if current != constants.ORDER_DELIVERING {
			return forbidden("order-e-05", "Order must be in DELIVERING status to mark as delivered.")
		}
	case constants.ORDER_CANCELED:
		if current == constants.ORDER_RECEIVED {
			return forbidden("order-e-06", "Cannot cancel an order that has been received.")
		}
		// CANCELED là trạng thái cuối: hủy lần hai sẽ cộng trả tồn kho trùng
		if current == constants.ORDER_CANCELED {
			return forbidden("order-e-06", "Order has already been canceled.")
		}
	default:
		return forbidden("order-e-02", "You don't have permission to edit order to this status.")
	}
	return nil
}

// ClampQuantity giảm số lượng đặt xuống tồn kho còn lại thay vì từ chối đơn
func ClampQuantity(requested, inventory int) int {
	if requested > inventory {
		return inventory
	}
	return requested
}

// ComputeTotals tính tổng tiền và tổng số lượng từ các dòng đã chốt giá
func ComputeTotals(items []model.OrderItem) (totalPrice, totalQuantity int) {
	for _, item := range items {
		totalPrice += item.Price * item.Quantity
		totalQuantity += item.Quantity
	}
	return totalPrice, totalQuantity
}

// RestockOrderItems cộng trả tồn kho khi đơn bị hủy, mỗi item đúng một lần
func RestockOrderItems(tx *gorm.DB, items []model.OrderItem) error {
	for _, item := range items {
		if err := tx.Model(&model.Product{}).
			Where("id = ?", item.ProductId).
			Update("inventory", gorm.Expr("inventory + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

// MarkOrderItemsSold cộng dồn số đã bán khi người mua xác nhận đã nhận hàng
func MarkOrderItemsSold(tx *gorm.DB, items []model.OrderItem) error {
	for _, item := range items {
		if err := tx.Model(&model.Product{}).
			Where("id = ?", item.ProductId).
			Update("sold", gorm.Expr("sold + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

// ApplyTransition ghi trạng thái mới cùng side effect trong transaction đang mở.
// Trạng thái, tồn kho/số bán và paymentStatus phải commit như một khối.
func ApplyTransition(tx *gorm.DB, order *model.Order, requested string, reason *string) error {
	switch requested {
	case constants.ORDER_RECEIVED:
		if err := MarkOrderItemsSold(tx, order.Items); err != nil {
			return err
		}
	case constants.ORDER_CANCELED:
		if err := RestockOrderItems(tx, order.Items); err != nil {
			return err
		}
		order.PaymentStatus = constants.PAYMENT_CANCELED
	case constants.ORDER_DELIVERED:
		// COD: coi như đã thu tiền khi giao thành công
		order.PaymentStatus = constants.PAYMENT_PAID
	}

	if reason != nil {
		order.LastStatusChangeReason = *reason
	}
	order.Status = requested

	return tx.Model(&model.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"status":                    order.Status,
		"payment_status":            order.PaymentStatus,
		"last_status_change_reason": order.LastStatusChangeReason,
	}).Error
}
