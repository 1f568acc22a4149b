package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// Config đọc biến môi trường, tự load file .env lần đầu
func Config(key string) string {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using system environment")
		}
	})
	return os.Getenv(key)
}
