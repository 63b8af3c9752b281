package services

import (
	"errors"
	"gin-heyvankala/dto"
	"gin-heyvankala/models"
	"gin-heyvankala/repositories"
	"log"
)

type IProductService interface {
	FindAll() (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(input dto.ItemSubmissionInput) (*models.Product, error)
	Search(query string) (*[]models.Product, error)
}

type ProductService struct {
	store repositories.IStore
}

func NewProductService(store repositories.IStore) IProductService {
	return &ProductService{store: store}
}

func (s *ProductService) FindAll() (*[]models.Product, error) {
	return s.store.Products().FindAllProducts()
}

func (s *ProductService) FindById(productID uint) (*models.Product, error) {
	product, err := s.store.Products().FindProductById(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Create(input dto.ItemSubmissionInput) (*models.Product, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	newProduct := models.Product{
		ItemName:    input.ItemName,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	}

	var created *models.Product
	err := s.store.Transaction(func(tx repositories.IStore) error {
		var err error
		created, err = tx.Products().CreateProduct(newProduct)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("New product added: %s (ID: %d)", created.ItemName, created.ID)
	return created, nil
}

// Search 商品名または説明に大文字小文字を区別せず部分一致する商品をすべて返す
func (s *ProductService) Search(query string) (*[]models.Product, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	log.Printf("Search performed for query: '%s'", query)
	return s.store.Products().SearchProducts(query)
}
