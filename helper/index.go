package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/veejvn/agricultural-serving-platform/config"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated  = errors.New("user is not authenticated")
	ErrInsufficientRole = errors.New("insufficient permissions")
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetAccountByEmail(e string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Email: e}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["roles"] = tokenClaim.Roles
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetTokenClaim đọc claim đã được middleware Protected gắn vào Locals
func GetTokenClaim(c *fiber.Ctx) (model.TokenClaim, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, ErrUnauthenticated
	}

	tokenClaim := model.TokenClaim{}
	if accountId, ok := claims["accountId"].(float64); ok {
		tokenClaim.AccountId = uint(accountId)
	}
	if email, ok := claims["email"].(string); ok {
		tokenClaim.Email = email
	}
	if roles, ok := claims["roles"].(string); ok {
		tokenClaim.Roles = roles
	}
	if tokenClaim.AccountId == 0 {
		return model.TokenClaim{}, ErrUnauthenticated
	}
	return tokenClaim, nil
}

// RequireRole kiểm tra quyền tường minh trước khi thao tác, thay cho dispatch theo annotation
func RequireRole(claim model.TokenClaim, role string) error {
	account := model.Account{Roles: claim.Roles}
	if !account.HasRole(role) {
		return ErrInsufficientRole
	}
	return nil
}

func GetAccount(c *fiber.Ctx) (*model.Account, error) {
	claim, err := GetTokenClaim(c)
	if err != nil {
		return nil, err
	}
	var account model.Account
	if err := database.DB.First(&account, "id = ?", claim.AccountId).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetFarmer trả về hồ sơ nông dân của tài khoản hiện tại, yêu cầu role FARMER
func GetFarmer(c *fiber.Ctx) (*model.Farmer, error) {
	claim, err := GetTokenClaim(c)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(claim, constants.ROLE_FARMER); err != nil {
		return nil, err
	}
	var farmer model.Farmer
	if err := database.DB.First(&farmer, "account_id = ?", claim.AccountId).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}
