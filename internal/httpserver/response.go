package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/service/staff"
	"menu-admin-api/internal/validate"
)

// envelope is the uniform response body. Mutations that fail validation
// carry the per-field messages in Fields so the dashboard can highlight
// the offending inputs.
type envelope struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Data    any               `json:"data,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{OK: true, Data: data})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{OK: true, Message: msg})
}

// respondError maps domain and validation errors onto HTTP statuses.
// Anything unrecognized is a backend failure: logged, and returned as 502
// carrying the backend's error text.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	var fieldErrs validate.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, envelope{Message: "validation failed", Fields: fieldErrs})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, envelope{Message: "not found"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, staff.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, envelope{Message: "unauthorized"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, envelope{Message: "already exists"})
	default:
		logger.Printf("http: %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusBadGateway, envelope{Message: err.Error()})
	}
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, envelope{Message: msg})
}
