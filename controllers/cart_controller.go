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

type ICartController interface {
	GetCart(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
	Clear(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	lines, err := c.service.GetCart()
	if err != nil {
		respondUnexpected(ctx, "Get cart", err)
		return
	}

	ctx.JSON(http.StatusOK, lines)
}

func (c *CartController) AddItem(ctx *gin.Context) {
	var input dto.CartItemAddInput
	if !bindJSON(ctx, &input) {
		return
	}

	productID := *input.ProductID
	lines, err := c.service.AddItem(productID, input.Quantity)
	if err != nil {
		c.respondError(ctx, "Add cart item", productID, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartResponse{Message: constants.MsgCartItemAdded, Cart: lines})
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	productID, ok := parseID(ctx, "product_id")
	if !ok {
		return
	}
	var input dto.CartItemUpdateInput
	if !bindJSON(ctx, &input) {
		return
	}

	lines, err := c.service.UpdateQuantity(productID, *input.Quantity)
	if err != nil {
		c.respondError(ctx, "Update cart item", productID, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartResponse{
		Message: fmt.Sprintf(constants.MsgCartItemUpdated, productID),
		Cart:    lines,
	})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	productID, ok := parseID(ctx, "product_id")
	if !ok {
		return
	}

	lines, err := c.service.RemoveItem(productID)
	if err != nil {
		c.respondError(ctx, "Remove cart item", productID, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartResponse{
		Message: fmt.Sprintf(constants.MsgCartItemRemoved, productID),
		Cart:    lines,
	})
}

func (c *CartController) Clear(ctx *gin.Context) {
	lines, err := c.service.Clear()
	if err != nil {
		respondUnexpected(ctx, "Clear cart", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartResponse{Message: constants.MsgCartCleared, Cart: lines})
}

func (c *CartController) respondError(ctx *gin.Context, operation string, productID uint, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf(constants.ErrProductNotFound, productID)})
	case errors.Is(err, services.ErrCartItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf(constants.ErrCartItemNotFound, productID)})
	case errors.Is(err, services.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   constants.ErrValidation,
			"details": []fieldError{{Field: "quantity", Message: "Quantity out of range"}},
		})
	default:
		respondUnexpected(ctx, operation, err)
	}
}
