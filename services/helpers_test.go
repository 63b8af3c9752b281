package services

import (
	"gin-heyvankala/dto"
	"gin-heyvankala/infra"
	"gin-heyvankala/repositories"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// どちらのストアでも同じ振る舞いになることを確認する
var testStores = map[string]func(t *testing.T) repositories.IStore{
	"gorm": newGormTestStore,
	"file": newFileTestStore,
}

func newGormTestStore(t *testing.T) repositories.IStore {
	db, err := infra.OpenSQLite(":memory:", &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return repositories.NewGormStore(db)
}

func newFileTestStore(t *testing.T) repositories.IStore {
	store, err := repositories.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func forEachStore(t *testing.T, fn func(t *testing.T, store repositories.IStore)) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			fn(t, newStore(t))
		})
	}
}

func seedProduct(t *testing.T, store repositories.IStore, name, description string, price float64) uint {
	product, err := NewProductService(store).Create(dto.ItemSubmissionInput{
		ItemName:    name,
		Description: description,
		Price:       price,
		Category:    "dog",
	})
	require.NoError(t, err)
	return product.ID
}
