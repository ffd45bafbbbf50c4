package middleware

import (
	"errors"
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed onto the gin context to the standard
// error envelope. Domain errors carry their kind and status code; anything
// else is logged and surfaced as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusInternalServerError {
					logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			} else {
				logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", apperror.KindInternal)
			}
		}
	}
}
