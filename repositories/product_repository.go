package repositories

import (
	"gin-heyvankala/models"
	"strings"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAllProducts() (*[]models.Product, error)
	FindProductById(productID uint) (*models.Product, error)
	CreateProduct(newProduct models.Product) (*models.Product, error)
	SearchProducts(query string) (*[]models.Product, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAllProducts() (*[]models.Product, error) {
	products := []models.Product{}
	result := r.db.Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindProductById(productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) CreateProduct(newProduct models.Product) (*models.Product, error) {
	result := r.db.Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *ProductRepository) SearchProducts(query string) (*[]models.Product, error) {
	// SQLiteのLOWER()はASCIIしか小文字化しないため、全件取得してGo側で照合する
	if r.db.Dialector.Name() == "sqlite" {
		all := []models.Product{}
		if result := r.db.Order("id").Find(&all); result.Error != nil {
			return nil, result.Error
		}
		products := filterProducts(all, query)
		return &products, nil
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	products := []models.Product{}
	result := r.db.
		Where(`LOWER(item_name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}
