package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
)

var (
	boardClients = make(map[*websocket.Conn]bool)
	boardMu      sync.Mutex
	boardOnce    sync.Once
)

// startBoardRelay chạy đúng một goroutine sub kênh Redis và phát cho mọi
// client của bảng: mỗi message chỉ được gửi tới mỗi client một lần
func startBoardRelay() {
	go func() {
		pubsub := getRedisClient().Subscribe(context.Background(), marketPriceChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			payload := []byte(msg.Payload)

			boardMu.Lock()
			for conn := range boardClients {
				// Nếu client lỗi → xoá
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					conn.Close()
					delete(boardClients, conn)
				}
			}
			boardMu.Unlock()
		}
	}()
}

// MarketPriceBoard xử lý WS connection của bảng giá trực tiếp
func MarketPriceBoard(c *websocket.Conn) {
	boardOnce.Do(startBoardRelay)

	// Khi WS disconnect → xoá client
	defer func() {
		boardMu.Lock()
		delete(boardClients, c)
		boardMu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào bảng
	boardMu.Lock()
	boardClients[c] = true
	boardMu.Unlock()

	// Gửi snapshot giá mới nhất lần đầu
	var marketPrices []model.MarketPrice
	database.DB.Raw(`
		SELECT DISTINCT ON (product_id) *
		FROM market_prices
		ORDER BY product_id, date_recorded DESC
	`).Scan(&marketPrices)
	c.WriteJSON(marketPrices)

	// Giữ connection mở, thoát khi client đóng
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
