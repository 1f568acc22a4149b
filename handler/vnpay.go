package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/veejvn/agricultural-serving-platform/config"
	"github.com/veejvn/agricultural-serving-platform/model"
)

// VNPay service ký và xác thực request theo giao thức cổng thanh toán
type VNPay struct {
	Config model.VNPayConfig
}

func NewVNPay() *VNPay {
	appUrl := config.Config("APP_URL")
	return &VNPay{
		Config: model.VNPayConfig{
			TmnCode:    config.Config("VNP_TMNCODE"),
			HashSecret: config.Config("VNP_HASHSECRET"),
			BaseURL:    config.Config("VNP_URL"),
			ReturnURL:  appUrl + "/api/payments/vnpay-return",
			IPNURL:     appUrl + "/api/payments/vnpay-ipn",
		},
	}
}

// HmacSHA512 ký chuỗi dữ liệu, trả về hex thường
func HmacSHA512(key, data string) string {
	h := hmac.New(sha512.New, []byte(key))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// HashAllFields chuẩn hóa tham số để ký: sort key theo thứ tự byte,
// bỏ giá trị rỗng, nối key=URLEncode(value) bằng dấu &
func HashAllFields(fields map[string]string) string {
	fieldNames := make([]string, 0, len(fields))
	for name := range fields {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)

	var hashData strings.Builder
	for _, fieldName := range fieldNames {
		fieldValue := fields[fieldName]
		if fieldValue == "" {
			continue
		}
		if hashData.Len() > 0 {
			hashData.WriteByte('&')
		}
		hashData.WriteString(fieldName)
		hashData.WriteByte('=')
		hashData.WriteString(url.QueryEscape(fieldValue))
	}
	return hashData.String()
}

// BuildPaymentUrl dựng link thanh toán đã ký cho một đơn hàng.
// Chuỗi ký và query string có nội dung giống hệt nhau.
func (v *VNPay) BuildPaymentUrl(req model.PaymentRequest) string {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Now().In(loc)

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    v.Config.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10), // VND * 100
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     req.TxnRef,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  v.Config.ReturnURL,
		"vnp_IpnUrl":     v.Config.IPNURL,
		"vnp_IpAddr":     req.IPAddr,
		"vnp_CreateDate": now.Format("20060102150405"),
		"vnp_ExpireDate": now.Add(15 * time.Minute).Format("20060102150405"),
	}

	query := HashAllFields(params)
	secureHash := HmacSHA512(v.Config.HashSecret, query)

	return v.Config.BaseURL + "?" + query + "&vnp_SecureHash=" + secureHash
}

// VerifyFields xác thực chữ ký của tham số callback/IPN.
// vnp_SecureHash và vnp_SecureHashType bị loại trước khi ký lại;
// so sánh hex phân biệt hoa thường (hai phía đều sinh hex thường).
func (v *VNPay) VerifyFields(fields map[string]string) bool {
	secureHash := fields["vnp_SecureHash"]
	if secureHash == "" {
		return false
	}

	filtered := make(map[string]string, len(fields))
	for name, value := range fields {
		if name == "vnp_SecureHash" || name == "vnp_SecureHashType" {
			continue
		}
		filtered[name] = value
	}

	signValue := HmacSHA512(v.Config.HashSecret, HashAllFields(filtered))
	return hmac.Equal([]byte(signValue), []byte(secureHash))
}

// ParseCallback xác thực bộ tham số callback và bóc tách kết quả
func (v *VNPay) ParseCallback(fields map[string]string) model.VNPayVerifyResult {
	result := model.VNPayVerifyResult{
		TxnRef:            fields["vnp_TxnRef"],
		ResponseCode:      fields["vnp_ResponseCode"],
		TransactionStatus: fields["vnp_TransactionStatus"],
		TransactionNo:     fields["vnp_TransactionNo"],
		BankCode:          fields["vnp_BankCode"],
		CardType:          fields["vnp_CardType"],
		PayDate:           fields["vnp_PayDate"],
	}
	if amount, err := strconv.ParseInt(fields["vnp_Amount"], 10, 64); err == nil {
		result.Amount = amount / 100 // VNPay nhân 100 lần
	}
	result.IsValid = v.VerifyFields(fields)
	return result
}
