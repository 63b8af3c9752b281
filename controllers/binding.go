package controllers

import (
	"encoding/json"
	"errors"
	"gin-heyvankala/constants"
	"io"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// RegisterJSONFieldNames バリデーションエラーのフィールド名にJSONタグの名前を使う
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON 失敗した場合は400を返してfalseを返す
func bindJSON(ctx *gin.Context, obj any) bool {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrNoData})
	case errors.As(err, &validationErrors):
		details := make([]fieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, fieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		log.Printf("Validation Error: %v", details)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrValidation, "details": details})
	case errors.As(err, &typeError) && typeError.Field != "":
		details := []fieldError{{Field: typeError.Field, Message: "Must be of type " + typeError.Type.String()}}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrValidation, "details": details})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
	}
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	}
	return "Failed on the '" + fe.Tag() + "' rule"
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

// 内部の詳細はログにのみ出力する
func respondUnexpected(ctx *gin.Context, operation string, err error) {
	log.Printf("%s error: %v", operation, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
}
