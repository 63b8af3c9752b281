package dto

// ProductIDはポインタにして「未指定」と「0」を区別する
type CartItemAddInput struct {
	ProductID *uint `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type CartItemUpdateInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// CartLine 読み取り時点の商品名と価格を付与したカート行
type CartLine struct {
	ProductID uint    `json:"product_id"`
	ItemName  string  `json:"itemName"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartResponse struct {
	Message string     `json:"message"`
	Cart    []CartLine `json:"cart"`
}
