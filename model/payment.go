package model

import "time"

// Payment là bản ghi đối soát, chỉ được tạo khi IPN xác nhận thanh toán thành công.
// order_id unique để chặn ghi trùng khi IPN bị gửi lại.
type Payment struct {
	DTO
	TransactionId string     `json:"transactionId"` // vnp_TransactionNo
	VnpTxnRef     string     `json:"vnpTxnRef"`     // vnp_TxnRef = id đơn hàng
	ResponseCode  string     `json:"responseCode"`  // 00 = thành công
	BankCode      string     `json:"bankCode"`
	CardType      string     `json:"cardType"`
	PayDate       *time.Time `json:"payDate,omitempty"`
	OrderId       uint       `gorm:"uniqueIndex;not null" json:"orderId"`
}

type PaymentCreationResponse struct {
	PaymentUrl string `json:"paymentUrl"`
}
