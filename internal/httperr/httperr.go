package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the API's uniform error envelope. Code is a stable
// snake_case identifier the dashboard switches on
// (appointment_not_found, invalid_car_number, ...); Message is the
// user-facing text.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// BadRequest covers both malformed input and rejected BusinessError
// codes surfaced at the HTTP edge.
func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
