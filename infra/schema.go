package infra

import (
	"fmt"
	"gin-heyvankala/models"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Vendor{}, &models.Product{}, &models.CartItem{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// RecreateSchema 全テーブルを削除してモデル定義から作り直す。データはすべて失われる
func RecreateSchema(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.CartItem{}, &models.Product{}, &models.Vendor{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	log.Println("Dropped tables: cart_items, products, vendors")
	return Migrate(db)
}
