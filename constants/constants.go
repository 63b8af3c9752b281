package constants

// ストアの種類
const (
	StoreBackendDB   = "db"
	StoreBackendFile = "file"
)

// エラーメッセージ
const (
	ErrProductNotFound  = "Product with ID %d not found"
	ErrCartItemNotFound = "Item with product ID %d not found in cart"
	ErrEmailExists      = "Email already exists"
	ErrUnexpected       = "An unexpected server error occurred. Please try again later."
	ErrInvalidID        = "Invalid id"
	ErrInvalidInput     = "Invalid JSON body"
	ErrNoData           = "No data provided"
	ErrValidation       = "Validation failed"
	ErrQueryRequired    = "Search query 'q' parameter is required"
)

// レスポンスメッセージ
const (
	MsgVendorRegistered = "Vendor registered successfully"
	MsgProductAdded     = "Product added successfully"
	MsgCartItemAdded    = "Item added/updated in cart"
	MsgCartItemUpdated  = "Item %d quantity updated/removed"
	MsgCartItemRemoved  = "Item %d removed from cart"
	MsgCartCleared      = "Cart cleared successfully"
)
