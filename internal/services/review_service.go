package services

import (
	"context"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo *repositories.ReviewRepository
	UserRepo    *repositories.UserRepository
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return models.NewValidationError("rating", "Must be between 1 and 5.")
	}
	return nil
}

// CreateReview stores a customer's review of a business user. A reviewer may
// review a given business user at most once.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID int, role string, review models.Review) (models.Review, error) {
	if role != models.RoleCustomer {
		return models.Review{}, models.ErrForbidden
	}
	if review.BusinessUserID == 0 {
		return models.Review{}, models.NewValidationError("business_user", "This field is required.")
	}
	if err := validateRating(review.Rating); err != nil {
		return models.Review{}, err
	}

	target, err := s.UserRepo.GetUserByID(ctx, review.BusinessUserID)
	if err != nil || target.Role != models.RoleBusiness {
		return models.Review{}, models.NewValidationError("business_user", "Business user not found.")
	}

	review.ReviewerID = reviewerID
	return s.ReviewsRepo.CreateReview(ctx, review)
}

func (s *ReviewService) GetReviews(ctx context.Context, filter models.ReviewFilterRequest) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviews(ctx, filter)
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	return s.ReviewsRepo.GetReviewByID(ctx, id)
}

func (s *ReviewService) UpdateReview(ctx context.Context, id, requesterID int, patch models.ReviewPatch) (models.Review, error) {
	review, err := s.ReviewsRepo.GetReviewByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}
	if review.ReviewerID != requesterID {
		return models.Review{}, models.ErrForbidden
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return models.Review{}, err
		}
	}
	return s.ReviewsRepo.UpdateReview(ctx, id, patch)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id, requesterID int) error {
	review, err := s.ReviewsRepo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if review.ReviewerID != requesterID {
		return models.ErrForbidden
	}
	return s.ReviewsRepo.DeleteReview(ctx, id)
}
