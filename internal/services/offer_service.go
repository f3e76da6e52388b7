package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
	"coderrBack/utils"
)

type OfferService struct {
	OfferRepo *repositories.OfferRepository
	Storage   *utils.S3Storage
}

func isKnownOfferType(offerType string) bool {
	for _, t := range models.OfferTypes {
		if t == offerType {
			return true
		}
	}
	return false
}

// validateTierBatch checks the tier-level rules shared by create and update.
// On create every tier must carry the full field set and the batch must cover
// all three types; on update a tier may patch a subset of fields, but the
// batch must still be 1..3 entries with pairwise distinct, known types.
func validateTierBatch(details []models.OfferDetailInput, create bool) error {
	if create && len(details) != 3 {
		return models.NewValidationError("details", "An offer must contain exactly 3 details.")
	}
	if !create && (len(details) < 1 || len(details) > 3) {
		return models.NewValidationError("details", "An update may contain between 1 and 3 details.")
	}

	seen := map[string]bool{}
	for i, d := range details {
		field := func(name string) string { return fmt.Sprintf("details[%d].%s", i, name) }

		if d.OfferType == "" {
			return models.NewValidationError(field("offer_type"), "This field is required.")
		}
		if !isKnownOfferType(d.OfferType) {
			return models.NewValidationError(field("offer_type"), "Must be one of 'basic', 'standard' or 'premium'.")
		}
		if seen[d.OfferType] {
			return models.NewValidationError(field("offer_type"), "Duplicate offer type in details.")
		}
		seen[d.OfferType] = true

		if create {
			if d.Title == nil || *d.Title == "" {
				return models.NewValidationError(field("title"), "This field is required.")
			}
			if d.Revisions == nil {
				return models.NewValidationError(field("revisions"), "This field is required.")
			}
			if d.DeliveryTimeInDays == nil {
				return models.NewValidationError(field("delivery_time_in_days"), "This field is required.")
			}
			if d.Price == nil {
				return models.NewValidationError(field("price"), "This field is required.")
			}
			if d.Features == nil {
				return models.NewValidationError(field("features"), "This field is required.")
			}
		}

		if d.Title != nil && *d.Title == "" {
			return models.NewValidationError(field("title"), "May not be blank.")
		}
		if d.Revisions != nil && *d.Revisions < -1 {
			return models.NewValidationError(field("revisions"), "Must be -1 (unlimited) or greater.")
		}
		if d.DeliveryTimeInDays != nil && *d.DeliveryTimeInDays <= 0 {
			return models.NewValidationError(field("delivery_time_in_days"), "Must be a positive number of days.")
		}
		if d.Price != nil && *d.Price <= 0 {
			return models.NewValidationError(field("price"), "Must be greater than 0.")
		}
	}

	// With three pairwise distinct known types, the full set is covered.
	return nil
}

func (s *OfferService) CreateOffer(ctx context.Context, userID int, role string, req models.OfferCreateRequest) (models.Offer, error) {
	if role != models.RoleBusiness {
		return models.Offer{}, models.ErrForbidden
	}
	if req.Title == "" {
		return models.Offer{}, models.NewValidationError("title", "This field is required.")
	}
	if req.Description == "" {
		return models.Offer{}, models.NewValidationError("description", "This field is required.")
	}
	if err := validateTierBatch(req.Details, true); err != nil {
		return models.Offer{}, err
	}

	details := make([]models.OfferDetail, 0, len(req.Details))
	for _, in := range req.Details {
		details = append(details, models.OfferDetail{
			Title:              *in.Title,
			Revisions:          *in.Revisions,
			DeliveryTimeInDays: *in.DeliveryTimeInDays,
			Price:              *in.Price,
			Features:           *in.Features,
			OfferType:          in.OfferType,
		})
	}

	created, err := s.OfferRepo.CreateOfferWithDetails(ctx, models.Offer{
		UserID:      userID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}, details)
	if err != nil {
		return models.Offer{}, err
	}

	return s.OfferRepo.GetOfferByID(ctx, created.ID)
}

func (s *OfferService) GetOffers(ctx context.Context, filter models.OfferFilterRequest) (models.OfferListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return s.OfferRepo.GetOffers(ctx, filter)
}

func (s *OfferService) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	return s.OfferRepo.GetOfferByID(ctx, id)
}

// UpdateOffer patches offer scalars and reconciles the supplied tiers by
// offer type. Only the offer owner may update.
func (s *OfferService) UpdateOffer(ctx context.Context, offerID, requesterID int, req models.OfferUpdateRequest) (models.Offer, error) {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return models.Offer{}, err
	}
	if ownerID != requesterID {
		return models.Offer{}, models.ErrForbidden
	}

	if req.Title != nil && *req.Title == "" {
		return models.Offer{}, models.NewValidationError("title", "May not be blank.")
	}
	if req.Description != nil && *req.Description == "" {
		return models.Offer{}, models.NewValidationError("description", "May not be blank.")
	}
	if req.Details != nil {
		if err := validateTierBatch(req.Details, false); err != nil {
			return models.Offer{}, err
		}
	}

	if err := s.OfferRepo.UpdateOfferWithDetails(ctx, offerID, req); err != nil {
		return models.Offer{}, err
	}

	return s.OfferRepo.GetOfferByID(ctx, offerID)
}

func (s *OfferService) DeleteOffer(ctx context.Context, offerID, requesterID int) error {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return err
	}
	if ownerID != requesterID {
		return models.ErrForbidden
	}
	return s.OfferRepo.DeleteOffer(ctx, offerID)
}

func (s *OfferService) GetOfferDetailByID(ctx context.Context, id int) (models.OfferDetail, error) {
	return s.OfferRepo.GetOfferDetailByID(ctx, id)
}

func (s *OfferService) UploadOfferImage(ctx context.Context, offerID, requesterID int, file []byte, fileName, contentType string) (string, error) {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return "", err
	}
	if ownerID != requesterID {
		return "", models.ErrForbidden
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileName))
	url, err := s.Storage.UploadFile(file, storedName, "offer_images", contentType)
	if err != nil {
		return "", err
	}
	if err := s.OfferRepo.UpdateOfferImage(ctx, offerID, url); err != nil {
		return "", err
	}
	return url, nil
}
