package repositories

import (
	"errors"
	"gin-heyvankala/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindAllCartItems() ([]models.CartItem, error)
	FindCartItem(productID uint) (*models.CartItem, error)
	// SaveCartItem 同じProductIDの行があれば更新し、なければ作成する
	SaveCartItem(item models.CartItem) (*models.CartItem, error)
	DeleteCartItem(productID uint) error
	ClearCart() error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindAllCartItems() ([]models.CartItem, error) {
	items := []models.CartItem{}
	result := r.db.Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *CartRepository) FindCartItem(productID uint) (*models.CartItem, error) {
	var item models.CartItem
	result := r.db.First(&item, "product_id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *CartRepository) SaveCartItem(item models.CartItem) (*models.CartItem, error) {
	if item.ID == 0 {
		existing, err := r.FindCartItem(item.ProductID)
		if err == nil {
			item.ID = existing.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var result *gorm.DB
	if item.ID == 0 {
		result = r.db.Create(&item)
	} else {
		result = r.db.Model(&models.CartItem{}).
			Where("id = ?", item.ID).
			Update("quantity", item.Quantity)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *CartRepository) DeleteCartItem(productID uint) error {
	result := r.db.Delete(&models.CartItem{}, "product_id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) ClearCart() error {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CartItem{})
	return result.Error
}
