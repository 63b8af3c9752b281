package services

import (
	"gin-heyvankala/dto"
	"gin-heyvankala/repositories"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		service := NewCartService(store)

		_, err := service.AddItem(99, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)

		lines, err := service.GetCart()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartService_AddItem_MergesQuantity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		productID := seedProduct(t, store, "Dog Food", "Dry kibble", 320000)
		service := NewCartService(store)

		lines, err := service.AddItem(productID, 2)
		require.NoError(t, err)
		require.Len(t, lines, 1)

		lines, err = service.AddItem(productID, 3)
		require.NoError(t, err)
		assert.Equal(t, []dto.CartLine{{
			ProductID: productID,
			ItemName:  "Dog Food",
			Price:     320000,
			Quantity:  5,
		}}, lines)
	})
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		productID := seedProduct(t, store, "Dog Food", "Dry kibble", 1)
		service := NewCartService(store)

		for _, quantity := range []int{0, -1} {
			_, err := service.AddItem(productID, quantity)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}

		lines, err := service.GetCart()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartService_AddItem_RejectsQuantityOverflow(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		productID := seedProduct(t, store, "Dog Food", "Dry kibble", 1)
		service := NewCartService(store)

		_, err := service.AddItem(productID, math.MaxInt)
		require.NoError(t, err)

		_, err = service.AddItem(productID, 1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		lines, err := service.GetCart()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, math.MaxInt, lines[0].Quantity)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		dogFood := seedProduct(t, store, "Dog Food", "Dry kibble", 10)
		catToy := seedProduct(t, store, "Cat Toy", "Feather", 20)
		service := NewCartService(store)

		_, err := service.AddItem(dogFood, 2)
		require.NoError(t, err)
		_, err = service.AddItem(catToy, 1)
		require.NoError(t, err)

		lines, err := service.UpdateQuantity(dogFood, 7)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, 7, lines[0].Quantity)

		lines, err = service.UpdateQuantity(dogFood, 0)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, catToy, lines[0].ProductID)

		lines, err = service.GetCart()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, catToy, lines[0].ProductID)
	})
}

func TestCartService_UpdateQuantity_Errors(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		productID := seedProduct(t, store, "Dog Food", "Dry kibble", 10)
		service := NewCartService(store)

		_, err := service.UpdateQuantity(productID, 3)
		assert.ErrorIs(t, err, ErrCartItemNotFound)

		_, err = service.AddItem(productID, 4)
		require.NoError(t, err)

		_, err = service.UpdateQuantity(productID, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		lines, err := service.GetCart()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		productID := seedProduct(t, store, "Dog Food", "Dry kibble", 10)
		service := NewCartService(store)

		_, err := service.RemoveItem(productID)
		assert.ErrorIs(t, err, ErrCartItemNotFound)

		_, err = service.AddItem(productID, 1)
		require.NoError(t, err)

		lines, err := service.RemoveItem(productID)
		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}

func TestCartService_Clear(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repositories.IStore) {
		service := NewCartService(store)

		lines, err := service.Clear()
		require.NoError(t, err)
		assert.Empty(t, lines)

		for _, name := range []string{"Dog Food", "Cat Toy", "Leash"} {
			productID := seedProduct(t, store, name, "item", 5)
			_, err := service.AddItem(productID, 2)
			require.NoError(t, err)
		}

		lines, err = service.Clear()
		require.NoError(t, err)
		assert.Empty(t, lines)

		lines, err = service.GetCart()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}
