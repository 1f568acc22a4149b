package model

import "time"

// Ocop lưu hồ sơ chứng nhận OCOP của một sản phẩm, mỗi sản phẩm tối đa một hồ sơ
type Ocop struct {
	DTO
	Star              int         `json:"star"`
	CertificateNumber string      `json:"certificateNumber"`
	IssuedYear        int         `json:"issuedYear"`
	Issuer            string      `json:"issuer"`
	Status            string      `gorm:"not null;default:PENDING_VERIFY" json:"status"`
	VerifiedBy        *uint       `json:"verifiedBy,omitempty"`
	VerifiedAt        *time.Time  `json:"verifiedAt,omitempty"`
	Reason            string      `gorm:"type:text" json:"reason"`
	ProductId         uint        `gorm:"uniqueIndex;not null" json:"productId"`
	Images            []OcopImage `gorm:"foreignKey:OcopId" json:"images,omitempty"`
}

type OcopImage struct {
	DTO
	Url    string `gorm:"not null" json:"url"`
	OcopId uint   `gorm:"not null;index" json:"ocopId"`
}

type OcopRequest struct {
	Star              int      `json:"star" validate:"required,min=3,max=5"`
	CertificateNumber string   `json:"certificateNumber" validate:"required"`
	IssuedYear        int      `json:"issuedYear" validate:"required,gte=2018"`
	Issuer            string   `json:"issuer" validate:"required"`
	ImagePaths        []string `json:"imagePaths" validate:"required,min=1"`
}

type OcopRejectRequest struct {
	ProductId uint   `json:"productId" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
}
