package service

import (
	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// invalidFilter turns a rejected listing filter into a ValidationError so the
// shell reports it like any other bad input.
func invalidFilter(err error) error {
	return &domain.ValidationError{Field: "filter", Reason: err.Error()}
}
