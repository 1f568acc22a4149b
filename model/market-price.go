package model

import "time"

type MarketPrice struct {
	DTO
	Price        int       `gorm:"not null" json:"price"`
	Region       string    `gorm:"not null" json:"region"`
	DateRecorded time.Time `json:"dateRecorded"`
	ProductId    uint      `gorm:"not null;index" json:"productId"`
}

type MarketPriceCreationRequest struct {
	Price     int    `json:"price" validate:"required,gt=0"`
	Region    string `json:"region" validate:"required"`
	ProductId uint   `json:"productId" validate:"required,gt=0"`
}

type MarketPriceUpdateRequest struct {
	Price  int    `json:"price" validate:"required,gt=0"`
	Region string `json:"region" validate:"required"`
}

// MarketPriceEvent là payload phát qua Redis cho bảng giá trực tiếp
type MarketPriceEvent struct {
	ProductId   uint      `json:"productId"`
	ProductName string    `json:"productName"`
	Price       int       `json:"price"`
	Region      string    `json:"region"`
	RecordedAt  time.Time `json:"recordedAt"`
}
