package controllers

import (
	"errors"
	"gin-heyvankala/dto"
	"gin-heyvankala/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockCartService struct {
	lines []dto.CartLine
	err   error
}

func (m *mockCartService) GetCart() ([]dto.CartLine, error) { return m.lines, m.err }
func (m *mockCartService) AddItem(uint, int) ([]dto.CartLine, error) { return m.lines, m.err }
func (m *mockCartService) UpdateQuantity(uint, int) ([]dto.CartLine, error) {
	return m.lines, m.err
}
func (m *mockCartService) RemoveItem(uint) ([]dto.CartLine, error) { return m.lines, m.err }
func (m *mockCartService) Clear() ([]dto.CartLine, error) { return m.lines, m.err }

type mockVendorService struct {
	err error
}

func (m *mockVendorService) Signup(input dto.VendorSignupInput) (*models.Vendor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Vendor{ID: 7, Email: input.Email}, nil
}

func setupCartRouter(service *mockCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()
	c := NewCartController(service)
	r := gin.New()
	r.GET("/api/cart", c.GetCart)
	r.POST("/api/cart/items", c.AddItem)
	r.PUT("/api/cart/items/:product_id", c.UpdateItem)
	r.DELETE("/api/cart/items/:product_id", c.RemoveItem)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartController_UnexpectedErrorIsGeneric(t *testing.T) {
	r := setupCartRouter(&mockCartService{err: errors.New("disk full at /var/data")})

	w := serve(r, http.MethodGet, "/api/cart", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected server error occurred. Please try again later."}`, w.Body.String())

	w = serve(r, http.MethodPost, "/api/cart/items", `{"product_id":1,"quantity":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestCartController_InvalidProductID(t *testing.T) {
	r := setupCartRouter(&mockCartService{})

	w := serve(r, http.MethodDelete, "/api/cart/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())

	w = serve(r, http.MethodPut, "/api/cart/items/-1", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_AddItemResponse(t *testing.T) {
	r := setupCartRouter(&mockCartService{lines: []dto.CartLine{{ProductID: 3, ItemName: "Bowl", Price: 12.5, Quantity: 2}}})

	w := serve(r, http.MethodPost, "/api/cart/items", `{"product_id":3,"quantity":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Item added/updated in cart","cart":[{"product_id":3,"itemName":"Bowl","price":12.5,"quantity":2}]}`, w.Body.String())
}

func TestVendorController_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()
	body := `{"shopName":"Paws","email":"paws@example.com","password":"pw","contactPerson":"Ali","phoneNumber":"0912","shopAddress":"Shiraz"}`

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"created", nil, http.StatusCreated, `{"message":"Vendor registered successfully","vendor_id":7}`},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, `{"error":"An unexpected server error occurred. Please try again later."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/signup", NewVendorController(&mockVendorService{err: tt.err}).Signup)

			w := serve(r, http.MethodPost, "/signup", body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
