package model

type Review struct {
	DTO
	Content   string  `gorm:"type:text" json:"content"`
	Rating    float64 `gorm:"default:5" json:"rating"`
	Image     string  `json:"image"`
	ProductId uint    `gorm:"not null;index" json:"productId"`
	OrderId   uint    `gorm:"not null;index" json:"orderId"`
	AccountId uint    `gorm:"not null;index" json:"accountId"`
}

type ReviewRequest struct {
	Content   string  `json:"content" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,min=1,max=5"`
	Image     string  `json:"image"`
	ProductId uint    `json:"productId" validate:"required,gt=0"`
	OrderId   uint    `json:"orderId" validate:"required,gt=0"`
}
