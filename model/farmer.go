package model

import "time"

type Farmer struct {
	DTO
	Name        string    `gorm:"not null" json:"name"`
	Avatar      string    `json:"avatar"`
	CoverImage  string    `json:"coverImage"`
	Rating      float64   `gorm:"default:5" json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"not null;default:ACTIVE" json:"status"` // ACTIVE, BLOCKED
	AccountId   uint      `gorm:"uniqueIndex;not null" json:"accountId"`
	Products    []Product `gorm:"foreignKey:FarmerId" json:"products,omitempty"`
}

type FarmerUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Avatar      *string `json:"avatar,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ChangeFarmerStatusRequest struct {
	FarmerId uint   `json:"farmerId" validate:"required,gt=0"`
	Status   string `json:"status" validate:"required,oneof=ACTIVE BLOCKED"`
}

type FarmerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	CoverImage  string    `json:"coverImage"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
