package models

import "time"

type Vendor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ShopName      string    `gorm:"not null" json:"shopName"`
	Email         string    `gorm:"not null;uniqueIndex" json:"email"`
	Password      string    `gorm:"not null" json:"password"`
	ContactPerson string    `gorm:"not null" json:"contactPerson"`
	PhoneNumber   string    `gorm:"not null" json:"phoneNumber"`
	ShopAddress   string    `gorm:"not null" json:"shopAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
