package handlers

import (
	"errors"
	"net/http"

	apperrors "enquete-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the uniform envelope every endpoint returns. The front end
// checks Success before touching Data; the HTTP status alone is not enough
// because some failures ride on a 200.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, Response{Success: false, Error: err.Error()})
}

// respondServiceError maps the error taxonomy onto HTTP statuses: not found
// is 404, duplicates are 409, validation is 400, everything else is 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		respondError(c, http.StatusBadRequest, err)
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err)
	case apperrors.IsAlreadyExists(err):
		respondError(c, http.StatusConflict, err)
	case apperrors.IsValidation(err):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
