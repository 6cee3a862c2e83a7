package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func newValidationError(field, code, message string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

func invalidRequestError() *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

// AbortWithError maps domain errors onto HTTP statuses. Anything not
// recognized is a 500; computation never returns partial results with
// an error alongside.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sellerdomain.ErrSellerNotFound),
		errors.Is(err, saledomain.ErrSaleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, sellerdomain.ErrInvalidName),
		errors.Is(err, sellerdomain.ErrUnknownSponsor),
		errors.Is(err, saledomain.ErrInvalidProduct),
		errors.Is(err, saledomain.ErrAlreadyInstalled),
		errors.Is(err, commissiondomain.ErrInvalidMonth):
		status = http.StatusBadRequest
	case errors.Is(err, networkdomain.ErrHierarchyCycle):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
			"code":    "internal_error",
			"message": "internal error",
		}})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"code":    "request_failed",
		"message": err.Error(),
	}})
}
