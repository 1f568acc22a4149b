package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
)

func TestCheckConsumerTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		wantCode  string
	}{
		{"cancel pending order", constants.ORDER_PENDING, constants.ORDER_CANCELED, ""},
		{"cancel confirmed order", constants.ORDER_CONFIRMED, constants.ORDER_CANCELED, ""},
		{"cancel delivering order", constants.ORDER_DELIVERING, constants.ORDER_CANCELED, ""},
		{"cancel delivered order", constants.ORDER_DELIVERED, constants.ORDER_CANCELED, ""},
		{"cancel received order rejected", constants.ORDER_RECEIVED, constants.ORDER_CANCELED, "order-e-05"},
		{"cancel canceled order rejected", constants.ORDER_CANCELED, constants.ORDER_CANCELED, "order-e-05"},
		{"receive delivered order", constants.ORDER_DELIVERED, constants.ORDER_RECEIVED, ""},
		{"receive pending order rejected", constants.ORDER_PENDING, constants.ORDER_RECEIVED, "order-e-06"},
		{"receive confirmed order rejected", constants.ORDER_CONFIRMED, constants.ORDER_RECEIVED, "order-e-06"},
		{"receive delivering order rejected", constants.ORDER_DELIVERING, constants.ORDER_RECEIVED, "order-e-06"},
		{"consumer cannot confirm", constants.ORDER_PENDING, constants.ORDER_CONFIRMED, "order-e-02"},
		{"consumer cannot deliver", constants.ORDER_CONFIRMED, constants.ORDER_DELIVERING, "order-e-02"},
		{"consumer cannot mark delivered", constants.ORDER_DELIVERING, constants.ORDER_DELIVERED, "order-e-02"},
		{"unknown status rejected", constants.ORDER_PENDING, "SHIPPED", "order-e-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := helper.CheckConsumerTransition(tt.current, tt.requested)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantCode, err.Code)
				assert.Equal(t, 403, err.HttpStatus)
			}
		})
	}
}

func TestCheckFarmerTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		wantCode  string
	}{
		{"confirm pending order", constants.ORDER_PENDING, constants.ORDER_CONFIRMED, ""},
		{"confirm delivering order rejected", constants.ORDER_DELIVERING, constants.ORDER_CONFIRMED, "order-e-03"},
		{"confirm canceled order rejected", constants.ORDER_CANCELED, constants.ORDER_CONFIRMED, "order-e-03"},
		{"deliver confirmed order", constants.ORDER_CONFIRMED, constants.ORDER_DELIVERING, ""},
		{"deliver pending order rejected", constants.ORDER_PENDING, constants.ORDER_DELIVERING, "order-e-04"},
		{"mark delivered from delivering", constants.ORDER_DELIVERING, constants.ORDER_DELIVERED, ""},
		{"mark delivered from pending rejected", constants.ORDER_PENDING, constants.ORDER_DELIVERED, "order-e-05"},
		{"mark delivered from confirmed rejected", constants.ORDER_CONFIRMED, constants.ORDER_DELIVERED, "order-e-05"},
		{"cancel pending order", constants.ORDER_PENDING, constants.ORDER_CANCELED, ""},
		{"cancel delivered order", constants.ORDER_DELIVERED, constants.ORDER_CANCELED, ""},
		{"cancel received order rejected", constants.ORDER_RECEIVED, constants.ORDER_CANCELED, "order-e-06"},
		{"cancel canceled order rejected", constants.ORDER_CANCELED, constants.ORDER_CANCELED, "order-e-06"},
		{"farmer cannot mark received", constants.ORDER_DELIVERED, constants.ORDER_RECEIVED, "order-e-02"},
		{"unknown status rejected", constants.ORDER_PENDING, "SHIPPED", "order-e-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := helper.CheckFarmerTransition(tt.current, tt.requested)
			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantCode, err.Code)
				assert.Equal(t, 403, err.HttpStatus)
			}
		})
	}
}

// Đơn không thể nhảy cóc: CONFIRMED phải qua DELIVERING và DELIVERED
// rồi người mua mới được xác nhận đã nhận.
func TestTransitionNoShortcutFromConfirmed(t *testing.T) {
	err := helper.CheckConsumerTransition(constants.ORDER_CONFIRMED, constants.ORDER_RECEIVED)
	if assert.NotNil(t, err) {
		assert.Equal(t, "order-e-06", err.Code)
	}

	assert.Nil(t, helper.CheckFarmerTransition(constants.ORDER_CONFIRMED, constants.ORDER_DELIVERING))
	assert.Nil(t, helper.CheckFarmerTransition(constants.ORDER_DELIVERING, constants.ORDER_DELIVERED))
	assert.Nil(t, helper.CheckConsumerTransition(constants.ORDER_DELIVERED, constants.ORDER_RECEIVED))
}

// Hủy đơn chỉ được chấp nhận một lần: lần hủy thứ hai phải bị chặn ở bước
// kiểm tra, nếu không tồn kho sẽ được cộng trả trùng.
func TestCancelIsAcceptedOnlyOnce(t *testing.T) {
	err := helper.CheckConsumerTransition(constants.ORDER_PENDING, constants.ORDER_CANCELED)
	assert.Nil(t, err)

	err = helper.CheckConsumerTransition(constants.ORDER_CANCELED, constants.ORDER_CANCELED)
	if assert.NotNil(t, err) {
		assert.Equal(t, "order-e-05", err.Code)
	}

	err = helper.CheckFarmerTransition(constants.ORDER_CANCELED, constants.ORDER_CANCELED)
	if assert.NotNil(t, err) {
		assert.Equal(t, "order-e-06", err.Code)
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		inventory int
		want      int
	}{
		{"enough inventory", 3, 10, 3},
		{"exactly inventory", 10, 10, 10},
		{"more than inventory clamps", 15, 10, 10},
		{"empty inventory clamps to zero", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helper.ClampQuantity(tt.requested, tt.inventory))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	items := []model.OrderItem{
		{ProductId: 1, Quantity: 2, Price: 50},
		{ProductId: 2, Quantity: 3, Price: 50},
	}

	totalPrice, totalQuantity := helper.ComputeTotals(items)
	assert.Equal(t, 250, totalPrice)
	assert.Equal(t, 5, totalQuantity)

	totalPrice, totalQuantity = helper.ComputeTotals(nil)
	assert.Equal(t, 0, totalPrice)
	assert.Equal(t, 0, totalQuantity)
}
