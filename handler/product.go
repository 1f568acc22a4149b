package handler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/helper"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
	"gorm.io/gorm"
)

func toProductResponse(product *model.Product) model.ProductResponse {
	var response model.ProductResponse
	if err := copier.Copy(&response, product); err != nil {
		log.Printf("Lỗi map product response: %v", err)
	}
	return response
}

func toProductResponses(products []model.Product) []model.ProductResponse {
	response := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		response = append(response, toProductResponse(&products[i]))
	}
	return response
}

// findOwnedProduct tải sản phẩm và kiểm tra quyền sở hữu của nông trại hiện tại
func findOwnedProduct(tx *gorm.DB, productId uint, farmerId uint) (*model.Product, *helper.TransitionError) {
	var product model.Product
	if err := tx.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
		First(&product, "id = ?", productId).Error; err != nil {
		return nil, &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "product-e-01", Message: "Product not found"}
	}
	if product.FarmerId != farmerId {
		return nil, &helper.TransitionError{HttpStatus: fiber.StatusForbidden, Code: "product-e-03", Message: "You don't have permission to access this product"}
	}
	return &product, nil
}

// CreateProduct nông trại đăng sản phẩm, kèm hồ sơ OCOP nếu có
func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("productRequest").(model.ProductRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-00", "Invalid input", errors.New("missing input"))
	}

	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var category model.Category
	if err := database.DB.First(&category, "id = ?", input.CategoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category-e-02", "Category not found", err)
	}

	var product model.Product
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		images := make([]model.Image, 0, len(input.ImagePaths))
		for _, path := range input.ImagePaths {
			images = append(images, model.Image{Path: path})
		}

		product = model.Product{
			Name:        input.Name,
			Slug:        helper.GenerateUniqueProductSlug(tx, input.Name),
			Description: input.Description,
			Price:       input.Price,
			Inventory:   input.Inventory,
			Thumbnail:   input.Thumbnail,
			UnitPrice:   input.UnitPrice,
			Status:      constants.PRODUCT_ACTIVE,
			CategoryId:  category.ID,
			FarmerId:    farmer.ID,
			Images:      images,
		}

		if input.Ocop != nil {
			ocopImages := make([]model.OcopImage, 0, len(input.Ocop.ImagePaths))
			for _, path := range input.Ocop.ImagePaths {
				ocopImages = append(ocopImages, model.OcopImage{Url: path})
			}
			product.Ocop = &model.Ocop{
				Star:              input.Ocop.Star,
				CertificateNumber: input.Ocop.CertificateNumber,
				IssuedYear:        input.Ocop.IssuedYear,
				Issuer:            input.Ocop.Issuer,
				Status:            constants.OCOP_PENDING_VERIFY,
				Images:            ocopImages,
			}
		}

		return tx.Create(&product).Error
	})
	if txErr != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-01", "Create product successfully", toProductResponse(&product))
}

// UpdateProduct nông trại sửa sản phẩm của mình, đồng bộ lại bộ ảnh theo request
func UpdateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("productUpdateRequest").(model.ProductUpdateRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-00", "Invalid input", errors.New("missing input"))
	}

	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var category model.Category
	if err := database.DB.First(&category, "id = ?", input.CategoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category-e-02", "Category not found", err)
	}

	var product *model.Product
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var te *helper.TransitionError
		product, te = findOwnedProduct(tx, uint(productId), farmer.ID)
		if te != nil {
			return te
		}

		if err := tx.Model(&model.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"inventory":   input.Inventory,
			"thumbnail":   input.Thumbnail,
			"unit_price":  input.UnitPrice,
			"category_id": category.ID,
		}).Error; err != nil {
			return err
		}

		// Đồng bộ ảnh: giữ ảnh còn trong request, xóa ảnh bị bỏ, thêm ảnh mới
		if input.ImagePaths != nil {
			current := make(map[string]bool, len(product.Images))
			for _, img := range product.Images {
				current[img.Path] = true
			}
			requested := make(map[string]bool, len(input.ImagePaths))
			for _, path := range input.ImagePaths {
				requested[path] = true
			}

			for _, img := range product.Images {
				if !requested[img.Path] {
					if err := tx.Delete(&model.Image{}, "id = ?", img.ID).Error; err != nil {
						return err
					}
				}
			}
			for _, path := range input.ImagePaths {
				if !current[path] {
					if err := tx.Create(&model.Image{Path: path, ProductId: product.ID}).Error; err != nil {
						return err
					}
				}
			}
		}

		return tx.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
			First(product, "id = ?", product.ID).Error
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-02", "Update product successfully", toProductResponse(product))
}

// DeleteProduct xóa mềm: sản phẩm chuyển DELETED, vẫn nằm trong DB phục vụ đơn cũ
func DeleteProduct(c *fiber.Ctx) error {
	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		product, te := findOwnedProduct(tx, uint(productId), farmer.ID)
		if te != nil {
			return te
		}
		return tx.Model(&model.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"status":     constants.PRODUCT_DELETED,
			"deleted_at": time.Now(),
		}).Error
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-03", "Delete product successfully", nil)
}

// GetProductById trả chi tiết sản phẩm, hiển thị theo vai người xem:
// ADMIN thấy tất cả, FARMER thấy trừ DELETED, còn lại chỉ thấy ACTIVE
func GetProductById(c *fiber.Ctx) error {
	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	var product model.Product
	if err := database.DB.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
		First(&product, "id = ?", productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "product-e-01", "Product not found", err)
	}

	if claim, err := helper.GetTokenClaim(c); err == nil {
		if err := helper.RequireRole(claim, constants.ROLE_ADMIN); err == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, "product-s-04", "Get product successfully", toProductResponse(&product))
		}
		if err := helper.RequireRole(claim, constants.ROLE_FARMER); err == nil {
			if product.Status == constants.PRODUCT_DELETED {
				return utils.ErrorResponse(c, fiber.StatusForbidden, "product-e-03", "You don't have permission to access this product", nil)
			}
			return utils.SuccessResponse(c, fiber.StatusOK, "product-s-04", "Get product successfully", toProductResponse(&product))
		}
	}

	if product.Status != constants.PRODUCT_ACTIVE {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "product-e-03", "You don't have permission to access this product", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-04", "Get product successfully", toProductResponse(&product))
}

// GetActiveProducts danh sách sản phẩm ACTIVE công khai, phân trang, xếp theo rating
func GetActiveProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 12)
	page := c.QueryInt("page", 1)

	query := database.DB.Model(&model.Product{}).Where("status = ?", constants.PRODUCT_ACTIVE)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	var products []model.Product
	if err := utils.ApplyPagination(query.Preload("Images").Order("rating desc"), &limit, &page).
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-05", "Get all product successfully", model.ResponseCustom{
		Rows:       toProductResponses(products),
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

// GetProductNames tên + id sản phẩm ACTIVE, phục vụ ô chọn nhanh trên UI
func GetProductNames(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.Where("status = ?", constants.PRODUCT_ACTIVE).
		Order("name desc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.ProductNameResponse, 0, len(products))
	for _, product := range products {
		response = append(response, model.ProductNameResponse{ID: product.ID, Name: product.Name})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-06", "Get product names successfully", response)
}

// GetProductsByAdmin toàn bộ sản phẩm kể cả DELETED, chỉ cho ADMIN
func GetProductsByAdmin(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.Preload("Images").Preload("Ocop").
		Order("created_at desc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-07", "Get all product successfully", toProductResponses(products))
}

// GetMyProducts sản phẩm của nông trại hiện tại, không gồm DELETED
func GetMyProducts(c *fiber.Ctx) error {
	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var products []model.Product
	if err := database.DB.Preload("Images").Preload("Ocop").
		Where("farmer_id = ? AND status <> ?", farmer.ID, constants.PRODUCT_DELETED).
		Order("created_at desc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-08", "Get all product by farmer successfully", toProductResponses(products))
}

// GetProductsByFarmerId gian hàng công khai của một nông trại
func GetProductsByFarmerId(c *fiber.Ctx) error {
	farmerId, err := strconv.Atoi(c.Params("farmerId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "farmer-e-01", "Farmer not found", err)
	}

	var products []model.Product
	if err := database.DB.Preload("Images").
		Where("farmer_id = ? AND status <> ?", farmerId, constants.PRODUCT_DELETED).
		Order("created_at desc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-09", "Get all product by farmer successfully", toProductResponses(products))
}

// ChangeProductStatus đổi trạng thái sản phẩm, chỉ nhận ACTIVE / REJECTED / BLOCKED
func ChangeProductStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("changeProductStatus").(model.ChangeProductStatusRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-00", "Invalid input", errors.New("missing input"))
	}

	switch input.Status {
	case constants.PRODUCT_ACTIVE, constants.PRODUCT_REJECTED, constants.PRODUCT_BLOCKED:
	default:
		return utils.ErrorResponse(c, fiber.StatusForbidden, "product-e-02", "You don't have permission to change product to this status.", nil)
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ?", input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "product-e-01", "Product not found", err)
	}

	if err := database.DB.Model(&model.Product{}).Where("id = ?", product.ID).
		Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	product.Status = input.Status

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-10", "Change product status successfully", toProductResponse(&product))
}

// ResubmitOcop nông trại nộp lại hồ sơ OCOP sau khi bị từ chối
func ResubmitOcop(c *fiber.Ctx) error {
	input, ok := c.Locals("ocopRequest").(model.OcopRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "ocop-e-00", "Invalid input", errors.New("missing input"))
	}

	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	farmer, err := helper.GetFarmer(c)
	if err != nil {
		if errors.Is(err, helper.ErrInsufficientRole) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "auth-e-08", "Insufficient permissions", err)
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, "farmer-e-01", "Farmer not found", err)
	}

	var product *model.Product
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var te *helper.TransitionError
		product, te = findOwnedProduct(tx, uint(productId), farmer.ID)
		if te != nil {
			return te
		}

		if product.Ocop == nil {
			return &helper.TransitionError{HttpStatus: fiber.StatusNotFound, Code: "ocop-e-02", Message: "OCOP information not found for this product"}
		}
		if product.Ocop.Status != constants.OCOP_REJECTED {
			return &helper.TransitionError{HttpStatus: fiber.StatusForbidden, Code: "ocop-e-03", Message: "OCOP information can only be updated if its status is REJECTED"}
		}

		if err := tx.Model(&model.Ocop{}).Where("id = ?", product.Ocop.ID).Updates(map[string]interface{}{
			"star":               input.Star,
			"certificate_number": input.CertificateNumber,
			"issued_year":        input.IssuedYear,
			"issuer":             input.Issuer,
			"status":             constants.OCOP_PENDING_VERIFY,
			"reason":             "",
		}).Error; err != nil {
			return err
		}

		// Thay trọn bộ ảnh chứng nhận bằng bộ trong request
		if err := tx.Delete(&model.OcopImage{}, "ocop_id = ?", product.Ocop.ID).Error; err != nil {
			return err
		}
		for _, path := range input.ImagePaths {
			if err := tx.Create(&model.OcopImage{Url: path, OcopId: product.Ocop.ID}).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Images").Preload("Ocop").Preload("Ocop.Images").
			First(product, "id = ?", product.ID).Error
	})
	if txErr != nil {
		var te *helper.TransitionError
		if errors.As(txErr, &te) {
			return utils.ErrorResponse(c, te.HttpStatus, te.Code, te.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "product-e-99", constants.ERROR_INTERNAL_ERROR, txErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "product-s-11", "Update OCOP successfully", toProductResponse(product))
}
