package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Info),
	}
	if cfg.IsProd() {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.DBName != "" {
		return OpenPostgres(cfg, gormConfig)
	}
	return OpenSQLite(cfg.SQLitePath, gormConfig)
}

func OpenPostgres(cfg Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	// 本番環境ではsslmode=require、それ以外はsslmode=disable
	sslmode := "disable"
	if cfg.IsProd() {
		sslmode = "require"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Printf("Connection string (without password): host=%s, user=%s, dbname=%s, port=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBName, cfg.DBPort)
		return nil, fmt.Errorf("connect to postgres database: %w", err)
	}
	log.Printf("Setup postgres database: %s", cfg.DBName)
	return db, nil
}

// OpenSQLite pathが":memory:"の場合は接続を1本に固定して同じDBを共有する
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to sqlite database: %w", err)
	}

	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	log.Printf("Setup sqlite database: %s", path)
	return db, nil
}
