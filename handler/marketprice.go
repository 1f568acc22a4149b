package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/veejvn/agricultural-serving-platform/config"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

// Kênh Redis cho bảng giá thị trường trực tiếp
const marketPriceChannel = "market-price"

var redisClient *redis.Client

func getRedisClient() *redis.Client {
	if redisClient == nil {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	}
	return redisClient
}

// publishMarketPrice đẩy bản ghi giá mới lên Redis cho các client WS đang xem
func publishMarketPrice(marketPrice *model.MarketPrice, productName string) {
	event := model.MarketPriceEvent{
		ProductId:   marketPrice.ProductId,
		ProductName: productName,
		Price:       marketPrice.Price,
		Region:      marketPrice.Region,
		RecordedAt:  marketPrice.DateRecorded,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi marshal market price event: %v", err)
		return
	}
	if err := getRedisClient().Publish(context.Background(), marketPriceChannel, payload).Err(); err != nil {
		log.Printf("Lỗi publish market price: %v", err)
	}
}

// CreateMarketPrice ADMIN ghi nhận giá thị trường cho một sản phẩm
func CreateMarketPrice(c *fiber.Ctx) error {
	input, ok := c.Locals("marketPriceCreationRequest").(model.MarketPriceCreationRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "market-price-e-00", "Invalid input", errors.New("missing input"))
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ?", input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "product-e-01", "Product not found", err)
	}

	marketPrice := model.MarketPrice{
		Price:        input.Price,
		Region:       input.Region,
		DateRecorded: time.Now(),
		ProductId:    product.ID,
	}
	if err := database.DB.Create(&marketPrice).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "market-price-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}

	publishMarketPrice(&marketPrice, product.Name)

	return utils.SuccessResponse(c, fiber.StatusOK, "market-price-s-01", "Create market price successfully", marketPrice)
}

// GetMarketPricesByProduct lịch sử giá của một sản phẩm, mới nhất trước
func GetMarketPricesByProduct(c *fiber.Ctx) error {
	productId, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "product-e-01", "Product not found", err)
	}

	var marketPrices []model.MarketPrice
	if err := database.DB.Where("product_id = ?", productId).
		Order("date_recorded desc").Find(&marketPrices).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "market-price-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "market-price-s-02", "Get market prices successfully", marketPrices)
}

// GetLatestMarketPrices mỗi sản phẩm một dòng giá mới nhất, cho bảng giá tổng quan
func GetLatestMarketPrices(c *fiber.Ctx) error {
	var marketPrices []model.MarketPrice
	if err := database.DB.Raw(`
		SELECT DISTINCT ON (product_id) *
		FROM market_prices
		ORDER BY product_id, date_recorded DESC
	`).Scan(&marketPrices).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "market-price-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "market-price-s-03", "Get latest market prices successfully", marketPrices)
}

// UpdateMarketPrice ADMIN sửa một bản ghi giá
func UpdateMarketPrice(c *fiber.Ctx) error {
	input, ok := c.Locals("marketPriceUpdateRequest").(model.MarketPriceUpdateRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "market-price-e-00", "Invalid input", errors.New("missing input"))
	}

	marketPriceId, err := strconv.Atoi(c.Params("marketPriceId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "market-price-e-01", "Market price not found", err)
	}

	var marketPrice model.MarketPrice
	if err := database.DB.First(&marketPrice, "id = ?", marketPriceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "market-price-e-01", "Market price not found", err)
	}

	if err := database.DB.Model(&model.MarketPrice{}).Where("id = ?", marketPrice.ID).Updates(map[string]interface{}{
		"price":  input.Price,
		"region": input.Region,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "market-price-e-99", constants.ERROR_INTERNAL_ERROR, err)
	}
	marketPrice.Price = input.Price
	marketPrice.Region = input.Region

	var product model.Product
	if err := database.DB.First(&product, "id = ?", marketPrice.ProductId).Error; err == nil {
		publishMarketPrice(&marketPrice, product.Name)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "market-price-s-04", "Update market price successfully", marketPrice)
}

// DeleteMarketPrice ADMIN xóa một bản ghi giá
func DeleteMarketPrice(c *fiber.Ctx) error {
	marketPriceId, err := strconv.Atoi(c.Params("marketPriceId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "market-price-e-01", "Market price not found", err)
	}

	result := database.DB.Delete(&model.MarketPrice{}, "id = ?", marketPriceId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "market-price-e-99", constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "market-price-e-01", "Market price not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "market-price-s-05", "Delete market price successfully", nil)
}
