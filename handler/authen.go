package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

func setAuthCookies(c *fiber.Ctx, tokenData model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokenData.AccessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokenData.RefreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func issueTokens(c *fiber.Ctx, account *model.Account) (model.TokenData, error) {
	claim := model.TokenClaim{
		AccountId: account.ID,
		Email:     account.Email,
		Roles:     account.Roles,
	}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}

	if err := database.DB.Model(&model.Account{}).Where("id = ?", account.ID).
		Update("refresh_token", refreshToken).Error; err != nil {
		return model.TokenData{}, err
	}

	tokenData := model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}
	setAuthCookies(c, tokenData)
	return tokenData, nil
}

// Register gửi mã xác thực về email trước khi tạo tài khoản
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerRequest").(model.RegisterRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-01", "Invalid register input", errors.New("missing input"))
	}

	existed, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if existed != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-01", "Email has existed", errors.New("email already registered"))
	}

	code, err := utils.GenerateVerificationCode(6)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := utils.SaveVerificationCode(c.Context(), "register:"+input.Email, code, 5*time.Minute); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendVerificationEmail(input.Email, utils.VerificationEmailData{Code: code, ExpiresIn: "5 phút"})

	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-01", "Verification code sent", nil)
}

// VerifyRegister xác nhận mã và tạo tài khoản với role CONSUMER
func VerifyRegister(c *fiber.Ctx) error {
	input, ok := c.Locals("verifyRegisterRequest").(model.VerifyRegisterRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-01", "Invalid register input", errors.New("missing input"))
	}

	code, err := utils.GetVerificationCode(c.Context(), "register:"+input.Email)
	if err != nil || code != input.Code {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "code-e-01", "Code not found", errors.New("code invalid or expired"))
	}

	existed, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if existed != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-01", "Email has existed", errors.New("email already registered"))
	}

	hashedPassword, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Email:    input.Email,
		Password: hashedPassword,
		Roles:    constants.ROLE_CONSUMER,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.RemoveVerificationCode(c.Context(), "register:"+input.Email)

	tokenData, err := issueTokens(c, &account)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-02", "Register successfully", tokenData)
}

// Login đăng nhập theo role khai báo (CONSUMER, FARMER, ADMIN)
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("loginRequest").(model.LoginRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-02", "Invalid login input", errors.New("missing input"))
	}

	account, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-02", "Email account not found", errors.New("email not exists"))
	}

	if !account.HasRole(input.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-03", "Insufficient permissions", errors.New("account does not have requested role"))
	}

	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-04", "Wrong password", errors.New("password does not match"))
	}

	tokenData, err := issueTokens(c, account)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-03", "Login successfully", tokenData)
}

// RefreshToken cấp lại cặp token từ refresh token trong cookie
func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-05", "Refresh token not found", errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-05", "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-05", "Invalid refresh token", errors.New("invalid claims"))
	}
	accountIdFloat, ok := claims["accountId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-05", "Invalid refresh token", errors.New("invalid accountId in payload"))
	}

	var account model.Account
	if err := database.DB.First(&account, "id = ?", uint(accountIdFloat)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-06", "Account not found", err)
	}
	if account.RefreshToken != refreshCookie {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-05", "Invalid refresh token", errors.New("refresh token revoked"))
	}

	tokenData, err := issueTokens(c, &account)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-04", "Refresh token successfully", tokenData)
}

// Logout thu hồi refresh token và xóa cookie
func Logout(c *fiber.Ctx) error {
	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	if err := database.DB.Model(&model.Account{}).Where("id = ?", claim.AccountId).
		Update("refresh_token", "").Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-05", "Logout successfully", nil)
}

// ChangePassword đổi mật khẩu khi đã đăng nhập
func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("changePasswordRequest").(model.ChangePasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-07", "Invalid input", errors.New("missing input"))
	}

	account, err := helper.GetAccount(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-06", "Account not found", err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-07", "Wrong current password", errors.New("current password mismatch"))
	}

	hashedPassword, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(&model.Account{}).Where("id = ?", account.ID).
		Update("password", hashedPassword).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-06", "Change password successfully", nil)
}

// ForgotPassword gửi mã đặt lại mật khẩu về email
func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("forgotPasswordRequest").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-02", "Invalid input", errors.New("missing input"))
	}

	account, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-02", "Email account not found", errors.New("email not exists"))
	}

	code, err := utils.GenerateVerificationCode(6)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := utils.SaveVerificationCode(c.Context(), "reset:"+input.Email, code, 5*time.Minute); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendVerificationEmail(input.Email, utils.VerificationEmailData{Code: code, ExpiresIn: "5 phút"})

	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-07", "Reset code sent", nil)
}

// ResetPassword đặt mật khẩu mới bằng mã xác thực
func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("resetPasswordRequest").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "auth-e-02", "Invalid input", errors.New("missing input"))
	}

	code, err := utils.GetVerificationCode(c.Context(), "reset:"+input.Email)
	if err != nil || code != input.Code {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "code-e-01", "Code not found", errors.New("code invalid or expired"))
	}

	account, err := helper.GetAccountByEmail(input.Email)
	if err != nil || account == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-02", "Email account not found", err)
	}

	hashedPassword, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(&model.Account{}).Where("id = ?", account.ID).
		Update("password", hashedPassword).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.RemoveVerificationCode(c.Context(), "reset:"+input.Email)

	tokenData, err := issueTokens(c, account)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "auth-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "auth-s-08", "Reset password successfully", tokenData)
}
