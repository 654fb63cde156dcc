package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pushkarjay/career-advisor/internal/advisor"
	"github.com/pushkarjay/career-advisor/internal/scraper"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, advisor.ErrMissingTargetRole):
		return http.StatusBadRequest
	case errors.Is(err, advisor.ErrCareerNotFound):
		return http.StatusNotFound
	default:
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	var fetchErr *scraper.Error
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
