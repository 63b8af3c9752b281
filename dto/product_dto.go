package dto

type ItemSubmissionInput struct {
	ItemName    string  `json:"itemName" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
}

type ItemSubmissionResponse struct {
	Message   string `json:"message"`
	ProductID uint   `json:"product_id"`
}
