package middlewares

import (
	"gin-heyvankala/constants"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery パニックを500に変換する。内部の詳細はレスポンスに含めない
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Printf("Unhandled panic: %v", recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
	})
}
