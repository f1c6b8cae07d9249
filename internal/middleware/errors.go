package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshadsshinde/hospital-management-system/internal/apierr"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
	"github.com/Harshadsshinde/hospital-management-system/internal/token"
)

// ErrorHandler is the single place that turns typed failures into HTTP
// responses. Handlers and the auth gate attach errors to the gin context and
// abort; this middleware writes the {success:false, message} envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, message := translate(c.Errors.Last().Err)
		c.JSON(status, gin.H{"success": false, "message": message})
	}
}

func translate(err error) (int, string) {
	var api *apierr.Error
	switch {
	case errors.As(err, &api):
		return api.Status, api.Message
	case errors.Is(err, token.ErrExpiredToken):
		return http.StatusBadRequest, "Json Web Token is expired, Try again!"
	case errors.Is(err, token.ErrInvalidToken):
		return http.StatusBadRequest, "Json Web Token is invalid, Try again!"
	case errors.Is(err, store.ErrDuplicateEmail):
		return http.StatusBadRequest, "Duplicate email Entered"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Resource Not Found!"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
