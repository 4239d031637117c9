package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

// RecoveryMiddleware turns a handler panic into a logged 500 response so one
// bad request never takes the server down.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		panic("RecoveryMiddleware requires a non-nil zap.Logger instance")
	}
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("request_id", c.Writer.Header().Get(RequestIDHeader)),
				)

				// Headers may already be on the wire.
				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, models.ErrorResponse{
						Message: "Internal Server Error",
						Details: "the server encountered an unexpected condition",
					})
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
