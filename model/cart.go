package model

type CartItem struct {
	DTO
	Quantity  int     `gorm:"not null" json:"quantity"`
	AccountId uint    `gorm:"not null;index" json:"accountId"`
	ProductId uint    `gorm:"not null;index" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product"`
}

type CartItemRequest struct {
	ProductId uint `json:"productId" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}
