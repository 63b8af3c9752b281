package services

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
	ErrInvalidQuantity  = errors.New("quantity out of range")
	ErrInvalidPrice     = errors.New("price must be greater than 0")
	ErrEmptyQuery       = errors.New("search query is empty")
)
