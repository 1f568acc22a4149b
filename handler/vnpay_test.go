package handler_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veejvn/agricultural-serving-platform/handler"
	"github.com/veejvn/agricultural-serving-platform/model"
)

const testSecret = "VNPAYSECRETKEY123"

func testVNPay() *handler.VNPay {
	return &handler.VNPay{
		Config: model.VNPayConfig{
			TmnCode:    "TESTCODE",
			HashSecret: testSecret,
			BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
			ReturnURL:  "http://localhost:8080/api/payments/vnpay-return",
			IPNURL:     "http://localhost:8080/api/payments/vnpay-ipn",
		},
	}
}

func TestHmacSHA512(t *testing.T) {
	got := handler.HmacSHA512("key", "data")

	// hex thường, đủ 128 ký tự của SHA-512
	assert.Len(t, got, 128)
	assert.Equal(t, strings.ToLower(got), got)

	// cùng input cùng output, đổi key hoặc data thì khác
	assert.Equal(t, got, handler.HmacSHA512("key", "data"))
	assert.NotEqual(t, got, handler.HmacSHA512("other", "data"))
	assert.NotEqual(t, got, handler.HmacSHA512("key", "other"))
}

func TestHashAllFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "keys sorted by byte order",
			fields: map[string]string{"vnp_TxnRef": "42", "vnp_Amount": "1000", "vnp_Command": "pay"},
			want:   "vnp_Amount=1000&vnp_Command=pay&vnp_TxnRef=42",
		},
		{
			name:   "empty values skipped",
			fields: map[string]string{"vnp_Amount": "1000", "vnp_BankCode": "", "vnp_TxnRef": "42"},
			want:   "vnp_Amount=1000&vnp_TxnRef=42",
		},
		{
			name:   "values url encoded",
			fields: map[string]string{"vnp_OrderInfo": "Thanh toan don hang"},
			want:   "vnp_OrderInfo=Thanh+toan+don+hang",
		},
		{
			name:   "empty map",
			fields: map[string]string{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handler.HashAllFields(tt.fields))
		})
	}
}

func TestBuildPaymentUrl(t *testing.T) {
	vnpay := testVNPay()

	paymentUrl := vnpay.BuildPaymentUrl(model.PaymentRequest{
		Amount:    150000,
		OrderInfo: "Thanh toan don hang",
		TxnRef:    "42",
		IPAddr:    "127.0.0.1",
	})

	parsed, err := url.Parse(paymentUrl)
	assert.NoError(t, err)
	assert.Equal(t, "sandbox.vnpayment.vn", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "2.1.0", query.Get("vnp_Version"))
	assert.Equal(t, "pay", query.Get("vnp_Command"))
	assert.Equal(t, "TESTCODE", query.Get("vnp_TmnCode"))
	assert.Equal(t, "15000000", query.Get("vnp_Amount")) // VND * 100
	assert.Equal(t, "VND", query.Get("vnp_CurrCode"))
	assert.Equal(t, "42", query.Get("vnp_TxnRef"))
	assert.NotEmpty(t, query.Get("vnp_CreateDate"))
	assert.NotEmpty(t, query.Get("vnp_ExpireDate"))
	assert.NotEmpty(t, query.Get("vnp_SecureHash"))

	// chữ ký trên URL phải khớp khi tự xác thực lại
	fields := make(map[string]string, len(query))
	for key := range query {
		fields[key] = query.Get(key)
	}
	assert.True(t, vnpay.VerifyFields(fields))
}

func TestVerifyFields(t *testing.T) {
	vnpay := testVNPay()

	sign := func(fields map[string]string) map[string]string {
		signed := make(map[string]string, len(fields)+1)
		for k, v := range fields {
			signed[k] = v
		}
		signed["vnp_SecureHash"] = handler.HmacSHA512(testSecret, handler.HashAllFields(fields))
		return signed
	}

	base := map[string]string{
		"vnp_Amount":            "15000000",
		"vnp_TxnRef":            "42",
		"vnp_ResponseCode":      "00",
		"vnp_TransactionStatus": "00",
	}

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, vnpay.VerifyFields(sign(base)))
	})

	t.Run("tampered amount rejected", func(t *testing.T) {
		fields := sign(base)
		fields["vnp_Amount"] = "1"
		assert.False(t, vnpay.VerifyFields(fields))
	})

	t.Run("missing hash rejected", func(t *testing.T) {
		assert.False(t, vnpay.VerifyFields(base))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		fields := make(map[string]string, len(base)+1)
		for k, v := range base {
			fields[k] = v
		}
		fields["vnp_SecureHash"] = handler.HmacSHA512("othersecret", handler.HashAllFields(base))
		assert.False(t, vnpay.VerifyFields(fields))
	})

	t.Run("uppercase hash rejected", func(t *testing.T) {
		fields := sign(base)
		fields["vnp_SecureHash"] = strings.ToUpper(fields["vnp_SecureHash"])
		assert.False(t, vnpay.VerifyFields(fields))
	})

	t.Run("hash type field excluded from signing", func(t *testing.T) {
		fields := sign(base)
		fields["vnp_SecureHashType"] = "HMACSHA512"
		assert.True(t, vnpay.VerifyFields(fields))
	})
}

func TestParseCallback(t *testing.T) {
	vnpay := testVNPay()

	fields := map[string]string{
		"vnp_Amount":            "15000000",
		"vnp_TxnRef":            "42",
		"vnp_ResponseCode":      "00",
		"vnp_TransactionStatus": "00",
		"vnp_TransactionNo":     "14412345",
		"vnp_BankCode":          "NCB",
		"vnp_CardType":          "ATM",
		"vnp_PayDate":           "20260830143000",
	}
	fields["vnp_SecureHash"] = handler.HmacSHA512(testSecret, handler.HashAllFields(fields))

	result := vnpay.ParseCallback(fields)

	assert.True(t, result.IsValid)
	assert.Equal(t, "42", result.TxnRef)
	assert.Equal(t, int64(150000), result.Amount) // đã chia lại 100
	assert.Equal(t, "00", result.ResponseCode)
	assert.Equal(t, "00", result.TransactionStatus)
	assert.Equal(t, "14412345", result.TransactionNo)
	assert.Equal(t, "NCB", result.BankCode)
}
