package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func clientIP(c *fiber.Ctx) string {
	ip := c.Get("X-Forwarded-For")
	if ip == "" {
		ip = c.IP()
	}
	if ip == "::1" || ip == "0:0:0:0:0:0:0:1" {
		ip = "127.0.0.1"
	}
	return ip
}

// CreatePaymentUrl tạo link thanh toán VNPay cho một đơn hàng
func CreatePaymentUrl(c *fiber.Ctx) error {
	orderId, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-01", "Order not found", err)
	}

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}

	vnpay := NewVNPay()
	paymentUrl := vnpay.BuildPaymentUrl(model.PaymentRequest{
		Amount:    int64(order.TotalPrice),
		OrderInfo: "Thanh toan don hang",
		TxnRef:    strconv.Itoa(int(order.ID)),
		IPAddr:    clientIP(c),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "payment-s-01", "Create payment url successfully",
		model.PaymentCreationResponse{PaymentUrl: paymentUrl})
}

// VNPayReturn xử lý redirect từ trình duyệt sau thanh toán.
// Chỉ đọc: xác thực chữ ký rồi trả snapshot đơn cho UI, mọi cập nhật
// trạng thái do IPN đảm nhiệm vì redirect không được bảo đảm gửi tới.
func VNPayReturn(c *fiber.Ctx) error {
	vnpay := NewVNPay()
	result := vnpay.ParseCallback(queryFields(c))

	if !result.IsValid {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "payment-e-02", "Invalid signature", errors.New("signature mismatch"))
	}

	orderId, err := strconv.Atoi(result.TxnRef)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "payment-s-02", "Payment return processed successfully", toOrderResponse(&order))
}

// IPNResult là quyết định cho một thông báo IPN đã qua bước xác thực chữ ký
type IPNResult struct {
	RspCode          string
	Message          string
	NewPaymentStatus string // rỗng = giữ nguyên, không ghi gì
}

// EvaluateIPN áp các bước kiểm tra của cổng thanh toán lên đơn đã khóa dòng,
// order nil nghĩa là không tìm thấy. PAID chỉ được trả đúng một lần: gọi lại
// với đơn đã PAID nhận RspCode 02 và không đổi trạng thái.
func EvaluateIPN(order *model.Order, fields map[string]string) IPNResult {
	if order == nil {
		return IPNResult{RspCode: constants.VNPAY_IPN_ORDER_NOT_FOUND, Message: "Order not found"}
	}

	amount, err := strconv.ParseInt(fields["vnp_Amount"], 10, 64)
	if err != nil || amount/100 != int64(order.TotalPrice) {
		return IPNResult{RspCode: constants.VNPAY_IPN_INVALID_AMOUNT, Message: "Invalid amount"}
	}

	if order.PaymentStatus == constants.PAYMENT_PAID {
		return IPNResult{RspCode: constants.VNPAY_IPN_ALREADY_CONFIRMED, Message: "Order already confirmed"}
	}

	if fields["vnp_ResponseCode"] == "00" && fields["vnp_TransactionStatus"] == "00" {
		return IPNResult{
			RspCode:          constants.VNPAY_IPN_SUCCESS,
			Message:          "Confirm Success",
			NewPaymentStatus: constants.PAYMENT_PAID,
		}
	}

	// Cổng báo thất bại: ghi nhận FAILED nhưng vẫn ack "00"
	return IPNResult{
		RspCode:          constants.VNPAY_IPN_SUCCESS,
		Message:          "Payment failed",
		NewPaymentStatus: constants.PAYMENT_FAILED,
	}
}

// VNPayIPN xử lý thông báo server-to-server của cổng thanh toán.
// Trả về từ vựng {RspCode, Message} cố định của VNPay thay vì envelope lỗi nội bộ.
func VNPayIPN(c *fiber.Ctx) error {
	vnpay := NewVNPay()
	fields := queryFields(c)

	if !vnpay.VerifyFields(fields) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"RspCode": constants.VNPAY_IPN_INVALID_SIGNATURE,
			"Message": "Invalid signature",
		})
	}

	var result IPNResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Khóa dòng đơn hàng để check-then-set paymentStatus không bị race
		var order *model.Order
		if orderId, convErr := strconv.Atoi(fields["vnp_TxnRef"]); convErr == nil {
			var found model.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&found, "id = ?", orderId).Error; err == nil {
				order = &found
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		result = EvaluateIPN(order, fields)
		if result.NewPaymentStatus == "" {
			return nil
		}

		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Update("payment_status", result.NewPaymentStatus).Error; err != nil {
			return err
		}

		if result.NewPaymentStatus == constants.PAYMENT_PAID {
			payment := model.Payment{
				TransactionId: fields["vnp_TransactionNo"],
				VnpTxnRef:     fields["vnp_TxnRef"],
				ResponseCode:  fields["vnp_ResponseCode"],
				BankCode:      fields["vnp_BankCode"],
				CardType:      fields["vnp_CardType"],
				OrderId:       order.ID,
			}
			if payDate, perr := time.ParseInLocation("20060102150405", fields["vnp_PayDate"], time.FixedZone("ICT", 7*3600)); perr == nil {
				payment.PayDate = &payDate
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"RspCode": "99",
			"Message": "Unknown error",
		})
	}

	status := fiber.StatusOK
	if result.RspCode != constants.VNPAY_IPN_SUCCESS {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"RspCode": result.RspCode,
		"Message": result.Message,
	})
}

// GetPaymentStatus trả trạng thái thanh toán hiện tại của đơn
func GetPaymentStatus(c *fiber.Ctx) error {
	orderId, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order-e-01", "Order not found", err)
	}

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "order-e-01", "Order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "payment-s-03", "Get payment status successfully", order.PaymentStatus)
}

// queryFields gom toàn bộ query param thành map, bỏ giá trị rỗng
func queryFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		if len(value) > 0 {
			fields[string(key)] = string(value)
		}
	})
	return fields
}
