package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
)

func toAccountResponse(account *model.Account) model.AccountResponse {
	var response model.AccountResponse
	if err := copier.Copy(&response, account); err != nil {
		log.Printf("Lỗi map account response: %v", err)
	}
	return response
}

// Me trả thông tin tài khoản hiện tại
func Me(c *fiber.Ctx) error {
	account, err := helper.GetAccount(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-01", "Account not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account-s-01", "Get account successfully", toAccountResponse(account))
}

// UpdateAccount cập nhật hồ sơ cá nhân, chỉ các field được gửi lên
func UpdateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("updateAccountRequest").(model.UpdateAccountRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "account-e-01", "Invalid input", errors.New("missing input"))
	}

	account, err := helper.GetAccount(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-01", "Account not found", err)
	}

	updates := map[string]interface{}{}
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.Dob != nil {
		updates["dob"] = *input.Dob
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&model.Account{}).Where("id = ?", account.ID).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "account-e-99", constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := database.DB.First(account, "id = ?", account.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "account-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account-s-02", "Update account successfully", toAccountResponse(account))
}

// UpgradeToFarmer cấp role FARMER và mở hồ sơ nông trại cho tài khoản hiện tại
func UpgradeToFarmer(c *fiber.Ctx) error {
	input, ok := c.Locals("upgradeToFarmerRequest").(model.UpgradeToFarmerRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user-e-01", "Invalid input", errors.New("missing input"))
	}

	account, err := helper.GetAccount(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "auth-e-01", "Account not found", err)
	}

	if account.HasRole(constants.ROLE_FARMER) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "user-e-01", "Account already has role FARMER", errors.New("role already granted"))
	}

	var farmer model.Farmer
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		account.AddRole(constants.ROLE_FARMER)
		if err := tx.Model(&model.Account{}).Where("id = ?", account.ID).
			Update("roles", account.Roles).Error; err != nil {
			return err
		}
		farmer = model.Farmer{
			Name:      input.Name,
			Status:    constants.FARMER_ACTIVE,
			AccountId: account.ID,
		}
		return tx.Create(&farmer).Error
	})
	if txErr != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "account-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	var response model.FarmerResponse
	if err := copier.Copy(&response, &farmer); err != nil {
		log.Printf("Lỗi map farmer response: %v", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account-s-03", "Upgrade to farmer successfully", response)
}

// GetAllAccounts danh sách tài khoản, chỉ cho ADMIN
func GetAllAccounts(c *fiber.Ctx) error {
	var accounts []model.Account
	if err := database.DB.Order("created_at desc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "account-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.AccountResponse, 0, len(accounts))
	for i := range accounts {
		response = append(response, toAccountResponse(&accounts[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account-s-04", "Get all account successfully", response)
}

// DeleteAccount xóa tài khoản theo id, chỉ cho ADMIN
func DeleteAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "account-e-01", "Invalid input", errors.New("missing input"))
	}

	if err := database.DB.Delete(&model.Account{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "account-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account-s-05", "Delete account successfully", nil)
}

// CreateAddress thêm địa chỉ giao hàng cho tài khoản hiện tại
func CreateAddress(c *fiber.Ctx) error {
	input, ok := c.Locals("addressRequest").(model.AddressRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "address-e-02", "Invalid input", errors.New("missing input"))
	}

	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	address := model.Address{
		Province:      input.Province,
		Ward:          input.Ward,
		Detail:        input.Detail,
		IsDefault:     input.IsDefault,
		ReceiverName:  input.ReceiverName,
		ReceiverPhone: input.ReceiverPhone,
		AccountId:     claim.AccountId,
	}
	if err := database.DB.Create(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "address-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "address-s-01", "Create address successfully", address)
}

// GetAddresses liệt kê địa chỉ của tài khoản hiện tại
func GetAddresses(c *fiber.Ctx) error {
	claim, err := helper.GetTokenClaim(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "auth-e-00", "User is not authenticated", err)
	}

	var addresses []model.Address
	if err := database.DB.Where("account_id = ?", claim.AccountId).
		Order("is_default desc, created_at desc").Find(&addresses).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "address-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "address-s-02", "Get addresses successfully", addresses)
}
