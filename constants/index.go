package constants

// Roles
const (
	ROLE_CONSUMER = "CONSUMER"
	ROLE_FARMER   = "FARMER"
	ROLE_ADMIN    = "ADMIN"
)

// Order status
const (
	ORDER_PENDING    = "PENDING"
	ORDER_CONFIRMED  = "CONFIRMED"
	ORDER_DELIVERING = "DELIVERING"
	ORDER_DELIVERED  = "DELIVERED"
	ORDER_RECEIVED   = "RECEIVED"
	ORDER_CANCELED   = "CANCELED"
)

// Payment status
const (
	PAYMENT_PENDING  = "PENDING"
	PAYMENT_PAID     = "PAID"
	PAYMENT_FAILED   = "FAILED"
	PAYMENT_CANCELED = "CANCELED"
)

// Payment method
const (
	PAYMENT_METHOD_COD   = "COD"
	PAYMENT_METHOD_VNPAY = "VNPAY"
)

// Product status
const (
	PRODUCT_ACTIVE   = "ACTIVE"
	PRODUCT_REJECTED = "REJECTED"
	PRODUCT_BLOCKED  = "BLOCKED"
	PRODUCT_DELETED  = "DELETED"
)

// OCOP status
const (
	OCOP_PENDING_VERIFY = "PENDING_VERIFY"
	OCOP_VERIFIED       = "VERIFIED"
	OCOP_REJECTED       = "REJECTED"
)

// Farmer status
const (
	FARMER_ACTIVE  = "ACTIVE"
	FARMER_BLOCKED = "BLOCKED"
)

// Mã phản hồi IPN theo tài liệu VNPay, không trùng với mã lỗi nội bộ
const (
	VNPAY_IPN_SUCCESS           = "00"
	VNPAY_IPN_ORDER_NOT_FOUND   = "01"
	VNPAY_IPN_ALREADY_CONFIRMED = "02"
	VNPAY_IPN_INVALID_AMOUNT    = "04"
	VNPAY_IPN_INVALID_SIGNATURE = "97"
)

const (
	ERROR_INTERNAL_ERROR = "Internal server error"
)
