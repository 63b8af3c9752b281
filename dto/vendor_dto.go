package dto

type VendorSignupInput struct {
	ShopName      string `json:"shopName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,max=72"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	ShopAddress   string `json:"shopAddress" binding:"required"`
}

type VendorSignupResponse struct {
	Message  string `json:"message"`
	VendorID uint   `json:"vendor_id"`
}
