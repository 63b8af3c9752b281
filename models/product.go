package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"product_id"`
	ItemName    string    `gorm:"not null" json:"itemName"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null;check:price > 0" json:"price"`
	Category    string    `gorm:"not null" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
