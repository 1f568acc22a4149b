package database

import (
	"log"

	"github.com/veejvn/agricultural-serving-platform/config"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	password := config.Config("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = password
	}

	accounts := []model.Account{
		{Email: "admin@nongsan.vn", Password: hashPassword, DisplayName: "Administrator", Roles: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Rau củ"},
		{Name: "Trái cây"},
		{Name: "Lúa gạo"},
		{Name: "Thủy sản"},
		{Name: "Gia vị"},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Name, "error:", err)
		}
	}
}
