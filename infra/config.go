package infra

import (
	"os"
	"strings"
)

type Config struct {
	Env          string
	Port         string
	GinMode      string
	StoreBackend string
	DataDir      string
	AutoMigrate  bool

	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string
	SQLitePath string
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadConfig 環境変数から設定を読み込む
func LoadConfig() Config {
	port := getEnv("PORT", getEnv("AWS_LWA_PORT", "8080"))
	return Config{
		Env:          getEnv("ENV", "dev"),
		Port:         port,
		GinMode:      os.Getenv("GIN_MODE"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", "db")),
		DataDir:      getEnv("DATA_DIR", "data"),
		AutoMigrate:  getEnv("AUTO_MIGRATE", "false") == "true",
		DBName:       os.Getenv("DB_NAME"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBPort:       getEnv("DB_PORT", "5432"),
		SQLitePath:   getEnv("SQLITE_PATH", "heyvankala.db"),
	}
}

func (c Config) IsProd() bool {
	return c.Env == "prod"
}
