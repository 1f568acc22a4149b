package model

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	IPNURL     string
}

type PaymentRequest struct {
	Amount    int64  `json:"amount"` // VND, chưa nhân 100
	OrderInfo string `json:"orderInfo"`
	TxnRef    string `json:"txnRef"`
	IPAddr    string `json:"ipAddr"`
}

type VNPayVerifyResult struct {
	IsValid           bool   `json:"isValid"`
	TxnRef            string `json:"txnRef"`
	Amount            int64  `json:"amount"` // VND, đã chia 100
	ResponseCode      string `json:"responseCode"`
	TransactionStatus string `json:"transactionStatus"`
	TransactionNo     string `json:"transactionNo"`
	BankCode          string `json:"bankCode"`
	CardType          string `json:"cardType"`
	PayDate           string `json:"payDate"`
}
