package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/veejvn/agricultural-serving-platform/model"
	"gorm.io/gorm"
)

// GenerateUniqueProductSlug tạo slug từ tên sản phẩm, thêm hậu tố -N nếu trùng
func GenerateUniqueProductSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Product{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
