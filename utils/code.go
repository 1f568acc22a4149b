package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/veejvn/agricultural-serving-platform/config"
)

// Kho mã xác thực dùng một lần (đăng ký, quên mật khẩu), TTL do Redis quản lý
var (
	codeClient *redis.Client

	ErrCodeNotFound = errors.New("code not found or expired")
)

func codeRedis() *redis.Client {
	if codeClient == nil {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		codeClient = redis.NewClient(&redis.Options{Addr: addr})
	}
	return codeClient
}

// GenerateVerificationCode sinh mã số ngẫu nhiên n chữ số
func GenerateVerificationCode(n int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[idx.Int64()]
	}
	return string(code), nil
}

// SaveVerificationCode lưu payload theo key với TTL
func SaveVerificationCode(ctx context.Context, key, code string, ttl time.Duration) error {
	return codeRedis().Set(ctx, "verify:"+key, code, ttl).Err()
}

// GetVerificationCode trả về mã còn hiệu lực, hết hạn hoặc không tồn tại → ErrCodeNotFound
func GetVerificationCode(ctx context.Context, key string) (string, error) {
	val, err := codeRedis().Get(ctx, "verify:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func RemoveVerificationCode(ctx context.Context, key string) {
	codeRedis().Del(ctx, "verify:"+key)
}
