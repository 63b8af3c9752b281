package services

import (
	"errors"
	"gin-heyvankala/dto"
	"gin-heyvankala/models"
	"gin-heyvankala/repositories"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type IVendorService interface {
	Signup(input dto.VendorSignupInput) (*models.Vendor, error)
}

type VendorService struct {
	store repositories.IStore
}

func NewVendorService(store repositories.IStore) IVendorService {
	return &VendorService{store: store}
}

func (s *VendorService) Signup(input dto.VendorSignupInput) (*models.Vendor, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	var created *models.Vendor
	err = s.store.Transaction(func(tx repositories.IStore) error {
		_, err := tx.Vendors().FindVendorByEmail(input.Email)
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return err
		}

		created, err = tx.Vendors().CreateVendor(models.Vendor{
			ShopName:      input.ShopName,
			Email:         input.Email,
			Password:      string(hashedPassword),
			ContactPerson: input.ContactPerson,
			PhoneNumber:   input.PhoneNumber,
			ShopAddress:   input.ShopAddress,
		})
		return err
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	log.Printf("New vendor registered: %s (ID: %d)", created.ShopName, created.ID)
	return created, nil
}

// ドライバがエラーを変換しない場合に備えてメッセージでも判定する
func isDuplicateKey(err error) bool {
	if errors.Is(err, ErrEmailExists) || errors.Is(err, repositories.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: vendors.email") ||
		strings.Contains(msg, "duplicate key value")
}
