package infra

import (
	"fmt"
	"gin-heyvankala/constants"
	"gin-heyvankala/repositories"
	"log"
)

// SetupStore STORE_BACKENDに応じてストアを1つだけ作る
func SetupStore(cfg Config) (repositories.IStore, error) {
	switch cfg.StoreBackend {
	case constants.StoreBackendFile:
		log.Printf("Using file store in %s", cfg.DataDir)
		return repositories.NewFileStore(cfg.DataDir)
	case constants.StoreBackendDB:
		db, err := SetupDB(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := Migrate(db); err != nil {
				return nil, err
			}
		}
		return repositories.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
