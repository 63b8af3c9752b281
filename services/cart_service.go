package services

import (
	"errors"
	"fmt"
	"gin-heyvankala/dto"
	"gin-heyvankala/models"
	"gin-heyvankala/repositories"
	"log"
	"math"
)

type ICartService interface {
	GetCart() ([]dto.CartLine, error)
	AddItem(productID uint, quantity int) ([]dto.CartLine, error)
	UpdateQuantity(productID uint, quantity int) ([]dto.CartLine, error)
	RemoveItem(productID uint) ([]dto.CartLine, error)
	Clear() ([]dto.CartLine, error)
}

type CartService struct {
	store repositories.IStore
}

func NewCartService(store repositories.IStore) ICartService {
	return &CartService{store: store}
}

func (s *CartService) GetCart() ([]dto.CartLine, error) {
	var lines []dto.CartLine
	err := s.store.Transaction(func(tx repositories.IStore) error {
		var err error
		lines, err = cartLines(tx)
		return err
	})
	return lines, err
}

// AddItem 既存の行があれば数量を加算し、なければ新しい行を作る
func (s *CartService) AddItem(productID uint, quantity int) ([]dto.CartLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var lines []dto.CartLine
	err := s.store.Transaction(func(tx repositories.IStore) error {
		if _, err := tx.Products().FindProductById(productID); err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				log.Printf("Attempt to add non-existent product ID %d to cart.", productID)
				return ErrProductNotFound
			}
			return err
		}

		newQuantity := quantity
		existing, err := tx.Cart().FindCartItem(productID)
		switch {
		case err == nil:
			if existing.Quantity > math.MaxInt-quantity {
				return ErrInvalidQuantity
			}
			newQuantity += existing.Quantity
		case !errors.Is(err, repositories.ErrRecordNotFound):
			return err
		}

		item := cartItem(productID, newQuantity, existing)
		if _, err := tx.Cart().SaveCartItem(item); err != nil {
			return err
		}
		log.Printf("Cart: product ID %d now has quantity %d", productID, newQuantity)

		lines, err = cartLines(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity 数量を上書きする。0の場合は行を削除する
func (s *CartService) UpdateQuantity(productID uint, quantity int) ([]dto.CartLine, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	var lines []dto.CartLine
	err := s.store.Transaction(func(tx repositories.IStore) error {
		existing, err := tx.Cart().FindCartItem(productID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				log.Printf("Attempt to update non-existent item ID %d in cart.", productID)
				return ErrCartItemNotFound
			}
			return err
		}

		if quantity == 0 {
			if err := tx.Cart().DeleteCartItem(productID); err != nil {
				return err
			}
			log.Printf("Removed item ID %d from cart (quantity 0).", productID)
		} else {
			if _, err := tx.Cart().SaveCartItem(cartItem(productID, quantity, existing)); err != nil {
				return err
			}
			log.Printf("Updated quantity for item ID %d in cart to %d.", productID, quantity)
		}

		lines, err = cartLines(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) RemoveItem(productID uint) ([]dto.CartLine, error) {
	var lines []dto.CartLine
	err := s.store.Transaction(func(tx repositories.IStore) error {
		if err := tx.Cart().DeleteCartItem(productID); err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				log.Printf("Attempt to delete non-existent item ID %d from cart.", productID)
				return ErrCartItemNotFound
			}
			return err
		}
		log.Printf("Removed item ID %d from cart.", productID)

		var err error
		lines, err = cartLines(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) Clear() ([]dto.CartLine, error) {
	err := s.store.Transaction(func(tx repositories.IStore) error {
		return tx.Cart().ClearCart()
	})
	if err != nil {
		return nil, err
	}
	log.Println("Cart cleared.")
	return []dto.CartLine{}, nil
}

// 既存の行があればそのIDを引き継ぐ
func cartItem(productID uint, quantity int, existing *models.CartItem) models.CartItem {
	item := models.CartItem{ProductID: productID, Quantity: quantity}
	if existing != nil {
		item.ID = existing.ID
	}
	return item
}

// cartLines 各行に現在の商品名と価格を付与する
func cartLines(tx repositories.IStore) ([]dto.CartLine, error) {
	items, err := tx.Cart().FindAllCartItems()
	if err != nil {
		return nil, err
	}

	lines := make([]dto.CartLine, 0, len(items))
	for _, item := range items {
		product, err := tx.Products().FindProductById(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart item references product %d: %w", item.ProductID, err)
		}
		lines = append(lines, dto.CartLine{
			ProductID: item.ProductID,
			ItemName:  product.ItemName,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}
