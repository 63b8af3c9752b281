package infra

import (
	"gin-heyvankala/models"
	"gin-heyvankala/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "AWS_LWA_PORT", "GIN_MODE", "STORE_BACKEND", "DATA_DIR",
		"AUTO_MIGRATE", "DB_NAME", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_PORT", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db", cfg.StoreBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "heyvankala.db", cfg.SQLitePath)
	assert.False(t, cfg.IsProd())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("AWS_LWA_PORT", "9000")
	t.Setenv("STORE_BACKEND", "FILE")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("DB_NAME", "heyvankala")

	cfg := LoadConfig()
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "heyvankala", cfg.DBName)
}

func TestSetupStore(t *testing.T) {
	clearEnv(t)

	fileStore, err := SetupStore(Config{StoreBackend: "file", DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &repositories.FileStore{}, fileStore)

	dbStore, err := SetupStore(Config{StoreBackend: "db", SQLitePath: ":memory:", AutoMigrate: true})
	require.NoError(t, err)
	products, err := dbStore.Products().FindAllProducts()
	require.NoError(t, err)
	assert.Empty(t, *products)

	_, err = SetupStore(Config{StoreBackend: "redis"})
	assert.Error(t, err)
}

func TestRecreateSchema(t *testing.T) {
	db, err := OpenSQLite(":memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.Product{ItemName: "Bowl", Description: "Steel", Price: 10, Category: "dog"}).Error)

	require.NoError(t, RecreateSchema(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, db.Migrator().HasTable(&models.CartItem{}))
	assert.True(t, db.Migrator().HasTable(&models.Vendor{}))
}
