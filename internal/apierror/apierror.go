package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries the HTTP status a failure should be reported with.
type APIError struct {
	error
	httpStatus int
}

func (e APIError) Unwrap() error {
	return e.error
}

func (e APIError) HTTPStatus() int {
	return e.httpStatus
}

func New(e error, httpStatus int) APIError {
	return APIError{
		error:      e,
		httpStatus: httpStatus,
	}
}

// NewValidation reports missing or invalid caller input (400).
func NewValidation(s string) APIError {
	return APIError{error: errors.New(s), httpStatus: http.StatusBadRequest}
}

// NewForbidden reports an authorship mismatch (403).
func NewForbidden(s string) APIError {
	return APIError{error: errors.New(s), httpStatus: http.StatusForbidden}
}

// NewNotFound reports an absent entity (404).
func NewNotFound(s string) APIError {
	return APIError{error: errors.New(s), httpStatus: http.StatusNotFound}
}

// ToResponse renders err as the JSON error envelope. Errors that are not an
// APIError are treated as internal failures with the message surfaced.
func ToResponse(c *gin.Context, e error) {
	var apiErr APIError
	if errors.As(e, &apiErr) {
		c.JSON(apiErr.HTTPStatus(), gin.H{
			"success": false,
			"error":   apiErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   e.Error(),
	})
}
