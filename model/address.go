package model

type Address struct {
	DTO
	Province      string `gorm:"not null" json:"province"`
	Ward          string `json:"ward"`
	Detail        string `json:"detail"`
	IsDefault     bool   `gorm:"default:false" json:"isDefault"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	AccountId     uint   `gorm:"not null;index" json:"accountId"`
	FarmerId      *uint  `json:"farmerId,omitempty"`
}

type AddressRequest struct {
	Province      string `json:"province" validate:"required"`
	Ward          string `json:"ward"`
	Detail        string `json:"detail"`
	IsDefault     bool   `json:"isDefault"`
	ReceiverName  string `json:"receiverName" validate:"required"`
	ReceiverPhone string `json:"receiverPhone" validate:"required"`
}
