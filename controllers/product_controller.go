package controllers

import (
	"errors"
	"fmt"
	"gin-heyvankala/constants"
	"gin-heyvankala/dto"
	"gin-heyvankala/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Search(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll()
	if err != nil {
		respondUnexpected(ctx, "List products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) FindById(ctx *gin.Context) {
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	product, err := c.service.FindById(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf(constants.ErrProductNotFound, productID)})
			return
		}
		respondUnexpected(ctx, "Get product", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.ItemSubmissionInput
	if !bindJSON(ctx, &input) {
		return
	}

	newProduct, err := c.service.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   constants.ErrValidation,
				"details": []fieldError{{Field: "price", Message: "Must be greater than 0"}},
			})
			return
		}
		respondUnexpected(ctx, "Create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ItemSubmissionResponse{
		Message:   constants.MsgProductAdded,
		ProductID: newProduct.ID,
	})
}

func (c *ProductController) Search(ctx *gin.Context) {
	products, err := c.service.Search(ctx.Query("q"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrQueryRequired})
			return
		}
		respondUnexpected(ctx, "Search", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}
