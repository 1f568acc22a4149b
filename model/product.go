package model

import "time"

type Product struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       int     `gorm:"not null" json:"price"`
	Inventory   int     `gorm:"not null;check:inventory >= 0" json:"inventory"`
	Sold        int     `gorm:"not null;default:0" json:"sold"`
	Rating      float64 `gorm:"default:5" json:"rating"`
	Thumbnail   string  `json:"thumbnail"`
	UnitPrice   string  `json:"unitPrice"` // đơn vị tính: kg, bó, thùng...
	Status      string  `gorm:"not null;default:ACTIVE" json:"status"`
	CategoryId  uint    `gorm:"not null;index" json:"categoryId"`
	FarmerId    uint    `gorm:"not null;index" json:"farmerId"`
	Images      []Image `gorm:"foreignKey:ProductId" json:"images,omitempty"`
	Ocop        *Ocop   `gorm:"foreignKey:ProductId" json:"ocop,omitempty"`
}

type Image struct {
	DTO
	Path      string `gorm:"not null" json:"path"`
	ProductId uint   `gorm:"not null;index" json:"productId"`
}

type ProductRequest struct {
	Name        string       `json:"name" validate:"required,min=2,max=150"`
	Description string       `json:"description"`
	Price       int          `json:"price" validate:"required,gt=0"`
	Inventory   int          `json:"inventory" validate:"required,gte=0"`
	Thumbnail   string       `json:"thumbnail"`
	UnitPrice   string       `json:"unitPrice"`
	CategoryId  uint         `json:"categoryId" validate:"required,gt=0"`
	ImagePaths  []string     `json:"imagePaths"`
	Ocop        *OcopRequest `json:"ocop,omitempty"`
}

type ProductUpdateRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Description string   `json:"description"`
	Price       int      `json:"price" validate:"required,gt=0"`
	Inventory   int      `json:"inventory" validate:"required,gte=0"`
	Thumbnail   string   `json:"thumbnail"`
	UnitPrice   string   `json:"unitPrice"`
	CategoryId  uint     `json:"categoryId" validate:"required,gt=0"`
	ImagePaths  []string `json:"imagePaths"`
}

type ChangeProductStatusRequest struct {
	ProductId uint   `json:"productId" validate:"required,gt=0"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE REJECTED BLOCKED"`
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Inventory   int       `json:"inventory"`
	Sold        int       `json:"sold"`
	Rating      float64   `json:"rating"`
	Thumbnail   string    `json:"thumbnail"`
	UnitPrice   string    `json:"unitPrice"`
	Status      string    `json:"status"`
	CategoryId  uint      `json:"categoryId"`
	FarmerId    uint      `json:"farmerId"`
	Images      []Image   `json:"images,omitempty"`
	Ocop        *Ocop     `json:"ocop,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductNameResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
