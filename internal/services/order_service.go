package services

import (
	"context"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type OrderService struct {
	OrderRepo *repositories.OrderRepository
	OfferRepo *repositories.OfferRepository
	UserRepo  *repositories.UserRepository
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusInProgress, models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

// canTransition reports whether an order may move from one status to
// another. Completed and cancelled are terminal.
func canTransition(from, to string) bool {
	if from != models.OrderStatusInProgress {
		return false
	}
	return to == models.OrderStatusCompleted || to == models.OrderStatusCancelled
}

// CreateOrder materializes an order as a snapshot of the referenced offer
// detail. Later edits to the tier never change the order.
func (s *OrderService) CreateOrder(ctx context.Context, userID int, role string, req models.OrderCreateRequest) (models.Order, error) {
	if role != models.RoleCustomer {
		return models.Order{}, models.ErrForbidden
	}
	if req.OfferDetailID == nil {
		return models.Order{}, models.NewValidationError("offer_detail_id", "This field is required.")
	}

	detail, businessUserID, err := s.OfferRepo.GetOfferDetailWithOwner(ctx, *req.OfferDetailID)
	if err != nil {
		return models.Order{}, err
	}

	return s.OrderRepo.CreateOrder(ctx, models.Order{
		CustomerUserID:     userID,
		BusinessUserID:     businessUserID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.OfferType,
		Status:             models.OrderStatusInProgress,
	})
}

func (s *OrderService) GetOrdersForUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.OrderRepo.GetOrdersForUser(ctx, userID)
}

// UpdateOrderStatus moves an order to a new status. Only the business party
// of the order may do this, and only along the allowed transitions.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, requesterID int, status string) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.BusinessUserID != requesterID {
		return models.Order{}, models.ErrForbidden
	}
	if !isKnownOrderStatus(status) {
		return models.Order{}, models.NewValidationError("status", "Must be one of 'in_progress', 'completed' or 'cancelled'.")
	}
	if !canTransition(order.Status, status) {
		return models.Order{}, models.NewValidationError("status", "Invalid status transition.")
	}
	return s.OrderRepo.UpdateOrderStatus(ctx, orderID, status)
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID int, role string) error {
	if role != models.RoleAdmin {
		return models.ErrForbidden
	}
	return s.OrderRepo.DeleteOrder(ctx, orderID)
}

func (s *OrderService) GetOrderCount(ctx context.Context, businessUserID int) (int, error) {
	user, err := s.UserRepo.GetUserByID(ctx, businessUserID)
	if err != nil || user.Role != models.RoleBusiness {
		return 0, models.ErrBusinessNotFound
	}
	return s.OrderRepo.CountOrdersForBusiness(ctx, businessUserID, models.OrderStatusInProgress)
}

func (s *OrderService) GetCompletedOrderCount(ctx context.Context, businessUserID int) (int, error) {
	user, err := s.UserRepo.GetUserByID(ctx, businessUserID)
	if err != nil || user.Role != models.RoleBusiness {
		return 0, models.ErrBusinessNotFound
	}
	return s.OrderRepo.CountOrdersForBusiness(ctx, businessUserID, models.OrderStatusCompleted)
}
