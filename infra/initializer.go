package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize .envがあれば読み込んでから設定を組み立てる
func Initialize() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
	return LoadConfig()
}
