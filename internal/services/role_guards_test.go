package services

import (
	"context"
	"errors"
	"testing"

	"coderrBack/internal/models"
)

func TestCreateOfferRequiresBusinessRole(t *testing.T) {
	s := &OfferService{}

	_, err := s.CreateOffer(context.Background(), 1, models.RoleCustomer, models.OfferCreateRequest{})
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateOrderRequiresCustomerRole(t *testing.T) {
	s := &OrderService{}

	_, err := s.CreateOrder(context.Background(), 1, models.RoleBusiness, models.OrderCreateRequest{})
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateOrderRequiresOfferDetailID(t *testing.T) {
	s := &OrderService{}

	_, err := s.CreateOrder(context.Background(), 1, models.RoleCustomer, models.OrderCreateRequest{})
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "offer_detail_id" {
		t.Errorf("expected field 'offer_detail_id', got %q", validationErr.Field)
	}
}

func TestDeleteOrderRequiresAdminRole(t *testing.T) {
	s := &OrderService{}

	err := s.DeleteOrder(context.Background(), 1, models.RoleCustomer)
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateReviewRequiresCustomerRole(t *testing.T) {
	s := &ReviewService{}

	_, err := s.CreateReview(context.Background(), 1, models.RoleBusiness, models.Review{BusinessUserID: 2, Rating: 5})
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
