package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrBusinessNotFound   = errors.New("models: business user not found")
	ErrOfferNotFound      = errors.New("models: offer not found")
	ErrTierNotFound       = errors.New("models: offer detail not found")
	ErrOrderNotFound      = errors.New("models: order not found")
	ErrReviewNotFound     = errors.New("models: review not found")
	ErrAlreadyReviewed    = errors.New("models: user already reviewed this business")
	ErrForbidden          = errors.New("models: operation not permitted")
)

// ValidationError names the offending field so handlers can return it to the
// client. Field uses the request-body path, e.g. "details[1].offer_type".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
