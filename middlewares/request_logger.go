package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger リクエストごとにIDを付与し、処理後にアクセスログを1行出力する
// クライアントがX-Request-IDを送った場合はそれを引き継ぐ
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("requestID", requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()

		log.Printf("[%s] %s - \"%s %s %s\" %d %s",
			requestID,
			ctx.ClientIP(),
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Request.Proto,
			ctx.Writer.Status(),
			time.Since(start),
		)
	}
}
