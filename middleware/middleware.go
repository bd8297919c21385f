// Package middleware holds the gin handlers that sit between the HTTP
// surface and the services.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edgardchm/pokedex-backend/repository"
	"github.com/edgardchm/pokedex-backend/responses"
)

// statusFor maps the repository sentinel errors to HTTP status codes.
// Anything unexpected is a 500, the caller sees only a generic message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, message string) {
	var res responses.ResponseMessage
	res.Status = "error"
	res.Message = message
	c.JSON(status, res)
}
