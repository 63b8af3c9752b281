package controllers

import (
	"errors"
	"gin-heyvankala/constants"
	"gin-heyvankala/dto"
	"gin-heyvankala/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IVendorController interface {
	Signup(ctx *gin.Context)
}

type VendorController struct {
	service services.IVendorService
}

func NewVendorController(service services.IVendorService) IVendorController {
	return &VendorController{service: service}
}

func (c *VendorController) Signup(ctx *gin.Context) {
	var input dto.VendorSignupInput
	if !bindJSON(ctx, &input) {
		return
	}

	vendor, err := c.service.Signup(input)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailExists})
			return
		}
		if errors.Is(err, services.ErrPasswordTooLong) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   constants.ErrValidation,
				"details": []fieldError{{Field: "password", Message: "Must be at most 72 bytes"}},
			})
			return
		}
		respondUnexpected(ctx, "Signup", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.VendorSignupResponse{
		Message:  constants.MsgVendorRegistered,
		VendorID: vendor.ID,
	})
}
