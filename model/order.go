package model

import "time"

type Order struct {
	DTO
	TotalPrice    int    `gorm:"not null" json:"totalPrice"`
	TotalQuantity int    `gorm:"not null" json:"totalQuantity"`
	Note          string `gorm:"type:text" json:"note"`
	// Lý do của lần đổi trạng thái gần nhất, ghi đè mỗi lần có reason mới
	LastStatusChangeReason string      `gorm:"type:text" json:"lastStatusChangeReason"`
	Status                 string      `gorm:"not null;default:PENDING" json:"status"`
	PaymentStatus          string      `gorm:"not null;default:PENDING" json:"paymentStatus"`
	PaymentMethod          string      `gorm:"not null" json:"paymentMethod"` // COD, VNPAY
	AddressId              uint        `gorm:"not null" json:"addressId"`
	AccountId              uint        `gorm:"not null;index" json:"accountId"`
	FarmerId               uint        `gorm:"not null;index" json:"farmerId"`
	Items                  []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items"`
	Payment                *Payment    `gorm:"foreignKey:OrderId" json:"payment,omitempty"`
}

// OrderItem là bản chụp bất biến tại thời điểm tạo đơn, khóa chính ghép (order, product)
type OrderItem struct {
	OrderId   uint `gorm:"primaryKey;autoIncrement:false" json:"orderId"`
	ProductId uint `gorm:"primaryKey;autoIncrement:false" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
	Price     int  `gorm:"not null" json:"price"`
}

type OrderRequest struct {
	AddressId     uint   `json:"addressId" validate:"required,gt=0"`
	FarmerId      uint   `json:"farmerId" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	Note          string `json:"note"`
	CartItemIds   []uint `json:"cartItemIds" validate:"required,min=1,dive,gt=0"`
}

type ChangeOrderStatusRequest struct {
	OrderId uint    `json:"orderId" validate:"required,gt=0"`
	Status  string  `json:"status" validate:"required"`
	Reason  *string `json:"reason,omitempty"`
}

type OrderResponse struct {
	ID                     uint        `json:"id"`
	TotalPrice             int         `json:"totalPrice"`
	TotalQuantity          int         `json:"totalQuantity"`
	Note                   string      `json:"note"`
	LastStatusChangeReason string      `json:"lastStatusChangeReason"`
	Status                 string      `json:"status"`
	PaymentStatus          string      `json:"paymentStatus"`
	PaymentMethod          string      `json:"paymentMethod"`
	AddressId              uint        `json:"addressId"`
	AccountId              uint        `json:"accountId"`
	FarmerId               uint        `json:"farmerId"`
	Items                  []OrderItem `json:"items"`
	QrCode                 string      `json:"qrCode,omitempty"`
	CreatedAt              time.Time   `json:"createdAt"`
}
