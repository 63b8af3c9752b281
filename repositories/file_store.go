package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"gin-heyvankala/models"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONドキュメントのファイル名
const (
	VendorsFile  = "vendors_db.json"
	ProductsFile = "products_db.json"
	CartFile     = "cart_db.json"
)

type fileState struct {
	vendors       []models.Vendor
	products      []models.Product
	cart          []models.CartItem
	nextVendorID  uint
	nextProductID uint
	dirty         map[string]bool
}

func (st *fileState) clone() *fileState {
	return &fileState{
		vendors:       append([]models.Vendor{}, st.vendors...),
		products:      append([]models.Product{}, st.products...),
		cart:          append([]models.CartItem{}, st.cart...),
		nextVendorID:  st.nextVendorID,
		nextProductID: st.nextProductID,
		dirty:         map[string]bool{},
	}
}

// FileStore 3つのJSONドキュメントをメモリに読み込み、変更のたびにファイル全体を書き直すストア
// 複数プロセスからの同時書き込みは調停しない
type FileStore struct {
	mu    sync.Mutex
	dir   string
	state *fileState
}

func NewFileStore(dir string) (IStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	st := &fileState{dirty: map[string]bool{}}
	loadDocument(filepath.Join(dir, VendorsFile), &st.vendors)
	loadDocument(filepath.Join(dir, ProductsFile), &st.products)
	loadDocument(filepath.Join(dir, CartFile), &st.cart)

	st.nextVendorID = 1
	for _, v := range st.vendors {
		if v.ID >= st.nextVendorID {
			st.nextVendorID = v.ID + 1
		}
	}
	st.nextProductID = 1
	for _, p := range st.products {
		if p.ID >= st.nextProductID {
			st.nextProductID = p.ID + 1
		}
	}
	log.Printf("File store loaded from %s: %d vendors, %d products, %d cart items",
		dir, len(st.vendors), len(st.products), len(st.cart))

	return &FileStore{dir: dir, state: st}, nil
}

// 読み込めないドキュメントは空として扱う
func loadDocument[T any](path string, dest *[]T) {
	*dest = []T{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("%s not found. Initializing with empty list.", path)
		} else {
			log.Printf("Error loading data from %s: %v. Initializing with empty list.", path, err)
		}
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Error loading data from %s: %v. Initializing with empty list.", path, err)
		return
	}
	if items != nil {
		*dest = items
	}
}

func (s *FileStore) Vendors() IVendorRepository {
	return &fileRepository{store: s}
}

func (s *FileStore) Products() IProductRepository {
	return &fileRepository{store: s}
}

func (s *FileStore) Cart() ICartRepository {
	return &fileRepository{store: s}
}

func (s *FileStore) Transaction(fn func(tx IStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runLocked(fn)
}

// runLocked s.muを保持した状態で呼ぶこと
func (s *FileStore) runLocked(fn func(tx IStore) error) error {
	snapshot := s.state.clone()
	if err := fn(&fileTx{store: s}); err != nil {
		s.state = snapshot
		return err
	}
	if err := s.persist(); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *FileStore) persist() error {
	documents := map[string]any{
		VendorsFile:  s.state.vendors,
		ProductsFile: s.state.products,
		CartFile:     s.state.cart,
	}
	for name := range s.state.dirty {
		if err := writeDocument(filepath.Join(s.dir, name), documents[name]); err != nil {
			log.Printf("Error saving data to %s: %v", name, err)
			return err
		}
	}
	s.state.dirty = map[string]bool{}
	return nil
}

// 一時ファイルに書いてからリネームし、ドキュメント全体を置き換える
func writeDocument(path string, data any) error {
	body, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// fileTx トランザクション内のビュー。ロックは呼び出し元が保持している
type fileTx struct {
	store *FileStore
}

func (t *fileTx) Vendors() IVendorRepository {
	return &fileRepository{store: t.store, inTx: true}
}

func (t *fileTx) Products() IProductRepository {
	return &fileRepository{store: t.store, inTx: true}
}

func (t *fileTx) Cart() ICartRepository {
	return &fileRepository{store: t.store, inTx: true}
}

func (t *fileTx) Transaction(fn func(tx IStore) error) error {
	return fn(t)
}
