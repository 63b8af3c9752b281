package repositories

import (
	"gin-heyvankala/models"
	"time"
)

// fileRepository FileStore上のVendor・Product・CartItemリポジトリ
type fileRepository struct {
	store *FileStore
	inTx  bool
}

func (r *fileRepository) read(fn func(st *fileState) error) error {
	if r.inTx {
		return fn(r.store.state)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store.state)
}

// トランザクション外の書き込みはそれ自体を1つのトランザクションとして実行する
func (r *fileRepository) write(fn func(st *fileState) error) error {
	if r.inTx {
		return fn(r.store.state)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.runLocked(func(IStore) error {
		return fn(r.store.state)
	})
}

func (r *fileRepository) CreateVendor(vendor models.Vendor) (*models.Vendor, error) {
	err := r.write(func(st *fileState) error {
		for _, v := range st.vendors {
			if v.Email == vendor.Email {
				return ErrDuplicatedKey
			}
		}
		now := time.Now()
		vendor.ID = st.nextVendorID
		vendor.CreatedAt = now
		vendor.UpdatedAt = now
		st.nextVendorID++
		st.vendors = append(st.vendors, vendor)
		st.dirty[VendorsFile] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *fileRepository) FindVendorByEmail(email string) (*models.Vendor, error) {
	var found *models.Vendor
	err := r.read(func(st *fileState) error {
		for _, v := range st.vendors {
			if v.Email == email {
				found = &v
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return found, err
}

func (r *fileRepository) CountVendors() (int64, error) {
	var count int64
	err := r.read(func(st *fileState) error {
		count = int64(len(st.vendors))
		return nil
	})
	return count, err
}

func (r *fileRepository) FindAllProducts() (*[]models.Product, error) {
	var products []models.Product
	err := r.read(func(st *fileState) error {
		products = append([]models.Product{}, st.products...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &products, nil
}

func (r *fileRepository) FindProductById(productID uint) (*models.Product, error) {
	var found *models.Product
	err := r.read(func(st *fileState) error {
		for _, p := range st.products {
			if p.ID == productID {
				found = &p
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return found, err
}

func (r *fileRepository) CreateProduct(newProduct models.Product) (*models.Product, error) {
	err := r.write(func(st *fileState) error {
		now := time.Now()
		newProduct.ID = st.nextProductID
		newProduct.CreatedAt = now
		newProduct.UpdatedAt = now
		st.nextProductID++
		st.products = append(st.products, newProduct)
		st.dirty[ProductsFile] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newProduct, nil
}

func (r *fileRepository) SearchProducts(query string) (*[]models.Product, error) {
	var products []models.Product
	err := r.read(func(st *fileState) error {
		products = filterProducts(st.products, query)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &products, nil
}

func (r *fileRepository) FindAllCartItems() ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.read(func(st *fileState) error {
		items = append([]models.CartItem{}, st.cart...)
		return nil
	})
	return items, err
}

func (r *fileRepository) FindCartItem(productID uint) (*models.CartItem, error) {
	var found *models.CartItem
	err := r.read(func(st *fileState) error {
		for _, item := range st.cart {
			if item.ProductID == productID {
				found = &item
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return found, err
}

func (r *fileRepository) SaveCartItem(item models.CartItem) (*models.CartItem, error) {
	err := r.write(func(st *fileState) error {
		st.dirty[CartFile] = true
		for i := range st.cart {
			if st.cart[i].ProductID == item.ProductID {
				st.cart[i].Quantity = item.Quantity
				return nil
			}
		}
		st.cart = append(st.cart, models.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
		return nil
	})
	if err != nil {
		return nil, err
	}
	item.ID = 0
	return &item, nil
}

func (r *fileRepository) DeleteCartItem(productID uint) error {
	return r.write(func(st *fileState) error {
		remaining := make([]models.CartItem, 0, len(st.cart))
		for _, item := range st.cart {
			if item.ProductID != productID {
				remaining = append(remaining, item)
			}
		}
		if len(remaining) == len(st.cart) {
			return ErrRecordNotFound
		}
		st.cart = remaining
		st.dirty[CartFile] = true
		return nil
	})
}

func (r *fileRepository) ClearCart() error {
	return r.write(func(st *fileState) error {
		st.cart = []models.CartItem{}
		st.dirty[CartFile] = true
		return nil
	})
}
