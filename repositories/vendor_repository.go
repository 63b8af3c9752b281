package repositories

import (
	"gin-heyvankala/models"

	"gorm.io/gorm"
)

type IVendorRepository interface {
	CreateVendor(vendor models.Vendor) (*models.Vendor, error)
	FindVendorByEmail(email string) (*models.Vendor, error)
	CountVendors() (int64, error)
}

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) IVendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) CreateVendor(vendor models.Vendor) (*models.Vendor, error) {
	result := r.db.Create(&vendor)
	if result.Error != nil {
		return nil, result.Error
	}
	return &vendor, nil
}

func (r *VendorRepository) FindVendorByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	result := r.db.First(&vendor, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &vendor, nil
}

func (r *VendorRepository) CountVendors() (int64, error) {
	var count int64
	result := r.db.Model(&models.Vendor{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
