package model

import (
	"strings"
	"time"
)

type Account struct {
	DTO
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	DisplayName string     `json:"displayName"`
	Phone       string     `json:"phone"`
	Avatar      string     `json:"avatar"`
	Dob         *time.Time `json:"dob,omitempty"`
	// Danh sách role phân tách bằng dấu phẩy: CONSUMER,FARMER,ADMIN
	Roles        string    `gorm:"not null;default:CONSUMER" json:"roles"`
	RefreshToken string    `json:"-"`
	Addresses    []Address `gorm:"foreignKey:AccountId" json:"addresses,omitempty"`
	Farmer       *Farmer   `gorm:"foreignKey:AccountId" json:"farmer,omitempty"`
}

func (a *Account) HasRole(role string) bool {
	for _, r := range strings.Split(a.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}

func (a *Account) AddRole(role string) {
	if a.HasRole(role) {
		return
	}
	if a.Roles == "" {
		a.Roles = role
		return
	}
	a.Roles = a.Roles + "," + role
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type VerifyRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Code     string `json:"code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=CONSUMER FARMER ADMIN"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=50"`
}

type UpdateAccountRequest struct {
	DisplayName *string    `json:"displayName,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	Dob         *time.Time `json:"dob,omitempty"`
}

type UpgradeToFarmerRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type AccountResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Phone       string     `json:"phone"`
	Avatar      string     `json:"avatar"`
	Dob         *time.Time `json:"dob,omitempty"`
	Roles       string     `json:"roles"`
	CreatedAt   time.Time  `json:"createdAt"`
}
