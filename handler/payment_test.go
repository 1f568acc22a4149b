package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/handler"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func successFields() map[string]string {
	return map[string]string{
		"vnp_TxnRef":            "42",
		"vnp_Amount":            "15000000", // 150000 VND * 100
		"vnp_ResponseCode":      "00",
		"vnp_TransactionStatus": "00",
		"vnp_TransactionNo":     "14412345",
	}
}

func pendingOrder() *model.Order {
	return &model.Order{
		TotalPrice:    150000,
		Status:        constants.ORDER_PENDING,
		PaymentStatus: constants.PAYMENT_PENDING,
		PaymentMethod: constants.PAYMENT_METHOD_VNPAY,
	}
}

func TestEvaluateIPN(t *testing.T) {
	tests := []struct {
		name        string
		order       *model.Order
		fields      map[string]string
		wantRspCode string
		wantStatus  string
	}{
		{
			name:        "order not found",
			order:       nil,
			fields:      successFields(),
			wantRspCode: constants.VNPAY_IPN_ORDER_NOT_FOUND,
			wantStatus:  "",
		},
		{
			name:  "amount mismatch",
			order: pendingOrder(),
			fields: func() map[string]string {
				f := successFields()
				f["vnp_Amount"] = "100"
				return f
			}(),
			wantRspCode: constants.VNPAY_IPN_INVALID_AMOUNT,
			wantStatus:  "",
		},
		{
			name:  "unparseable amount",
			order: pendingOrder(),
			fields: func() map[string]string {
				f := successFields()
				f["vnp_Amount"] = "abc"
				return f
			}(),
			wantRspCode: constants.VNPAY_IPN_INVALID_AMOUNT,
			wantStatus:  "",
		},
		{
			name:        "successful payment marks order paid",
			order:       pendingOrder(),
			fields:      successFields(),
			wantRspCode: constants.VNPAY_IPN_SUCCESS,
			wantStatus:  constants.PAYMENT_PAID,
		},
		{
			name:  "gateway failure marks order failed but acks 00",
			order: pendingOrder(),
			fields: func() map[string]string {
				f := successFields()
				f["vnp_ResponseCode"] = "24"
				return f
			}(),
			wantRspCode: constants.VNPAY_IPN_SUCCESS,
			wantStatus:  constants.PAYMENT_FAILED,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handler.EvaluateIPN(tt.order, tt.fields)
			assert.Equal(t, tt.wantRspCode, result.RspCode)
			assert.Equal(t, tt.wantStatus, result.NewPaymentStatus)
		})
	}
}

// Gửi lại cùng một payload thành công: lần đầu đánh dấu PAID, lần hai phải
// nhận RspCode 02 và không ghi thêm gì — bản ghi Payment chỉ được tạo khi
// NewPaymentStatus là PAID nên không thể có dòng thứ hai.
func TestEvaluateIPNIdempotent(t *testing.T) {
	order := pendingOrder()
	fields := successFields()

	first := handler.EvaluateIPN(order, fields)
	assert.Equal(t, constants.VNPAY_IPN_SUCCESS, first.RspCode)
	assert.Equal(t, constants.PAYMENT_PAID, first.NewPaymentStatus)

	// trạng thái đã được ghi nhận trong cùng transaction
	order.PaymentStatus = first.NewPaymentStatus

	second := handler.EvaluateIPN(order, fields)
	assert.Equal(t, constants.VNPAY_IPN_ALREADY_CONFIRMED, second.RspCode)
	assert.Equal(t, "Order already confirmed", second.Message)
	assert.Empty(t, second.NewPaymentStatus)
}
