package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/domain"
)

// errorBody is the JSON shape for every client-visible request error.
type errorBody struct {
	Error string `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorBody{Error: msg})
}

// MapDomainError translates request-validation errors to HTTP status codes
// and user-facing messages. Pipeline failures never pass through here; they
// are serialized as the 200-status failure variant by the bill handler.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "No file provided"
	case errors.Is(err, domain.ErrEmptyFileName):
		return http.StatusBadRequest, "Empty file name"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Only JPG and PNG supported"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, "Unable to decode image"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
