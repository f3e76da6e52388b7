package services

import (
	"errors"
	"testing"

	"coderrBack/internal/models"
)

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if err := validateRating(rating); err != nil {
			t.Errorf("expected rating %d to validate, got %v", rating, err)
		}
	}

	for _, rating := range []int{0, -1, 6} {
		err := validateRating(rating)
		if err == nil {
			t.Errorf("expected error for rating %d", rating)
			continue
		}
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("expected validation error for rating %d, got %v", rating, err)
		}
	}
}
