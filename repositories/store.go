package repositories

import "gorm.io/gorm"

// リポジトリ層が返す共通エラー
// ファイルストアもGORMと同じセンチネルを返す
var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicatedKey  = gorm.ErrDuplicatedKey
)

// IStore 3種類のレコードをまとめて保持する永続化の抽象
// 起動時にGormStoreかFileStoreのどちらか一方を選ぶ
type IStore interface {
	Vendors() IVendorRepository
	Products() IProductRepository
	Cart() ICartRepository
	// Transaction fnがエラーを返した場合は変更をすべて取り消す
	Transaction(fn func(tx IStore) error) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) IStore {
	return &GormStore{db: db}
}

func (s *GormStore) Vendors() IVendorRepository {
	return NewVendorRepository(s.db)
}

func (s *GormStore) Products() IProductRepository {
	return NewProductRepository(s.db)
}

func (s *GormStore) Cart() ICartRepository {
	return NewCartRepository(s.db)
}

func (s *GormStore) Transaction(fn func(tx IStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
