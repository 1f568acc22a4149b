package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/database"
	"github.com/veejvn/agricultural-serving-platform/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var expireScheduler gocron.Scheduler

// ExpireUnpaidOrders hủy các đơn VNPAY còn PENDING quá hạn thanh toán 15 phút
// (trùng với vnp_ExpireDate của link thanh toán) và trả lại tồn kho.
func ExpireUnpaidOrders() {
	db := database.DB
	deadline := time.Now().Add(-15 * time.Minute)

	var orderIds []uint
	if err := db.Model(&model.Order{}).
		Where("payment_method = ? AND status = ? AND payment_status = ? AND created_at < ?",
			constants.PAYMENT_METHOD_VNPAY, constants.ORDER_PENDING, constants.PAYMENT_PENDING, deadline).
		Pluck("id", &orderIds).Error; err != nil {
		log.Printf("Lỗi quét đơn quá hạn: %v", err)
		return
	}

	for _, orderId := range orderIds {
		err := db.Transaction(func(tx *gorm.DB) error {
			// Khóa dòng đơn rồi kiểm tra lại: IPN có thể vừa đánh dấu PAID
			// giữa lúc quét và lúc hủy
			var order model.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Items").
				First(&order, "id = ?", orderId).Error; err != nil {
				return err
			}
			if order.Status != constants.ORDER_PENDING || order.PaymentStatus != constants.PAYMENT_PENDING {
				return nil
			}

			reason := "Payment expired"
			if err := ApplyTransition(tx, &order, constants.ORDER_CANCELED, &reason); err != nil {
				return err
			}
			log.Printf("[CRON] Đã hủy đơn quá hạn thanh toán %d", order.ID)
			return nil
		})
		if err != nil {
			log.Printf("Lỗi hủy đơn quá hạn %d: %v", orderId, err)
		}
	}
}

func StartOrderExpireScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	expireScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(ExpireUnpaidOrders),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Order expire scheduler started (5m)")
}

func StopOrderExpireScheduler() {
	if expireScheduler != nil {
		_ = expireScheduler.Shutdown()
	}
}
