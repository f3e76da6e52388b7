package services

import (
	"errors"
	"testing"

	"coderrBack/internal/models"
)

func strPtr(s string) *string      { return &s }
func intPtr(i int) *int            { return &i }
func floatPtr(f float64) *float64  { return &f }
func featPtr(f []string) *[]string { return &f }

func fullTier(offerType string) models.OfferDetailInput {
	return models.OfferDetailInput{
		Title:              strPtr("Basic package"),
		Revisions:          intPtr(2),
		DeliveryTimeInDays: intPtr(5),
		Price:              floatPtr(100),
		Features:           featPtr([]string{"Logo design"}),
		OfferType:          offerType,
	}
}

func TestValidateTierBatchCreateRequiresThreeTiers(t *testing.T) {
	details := []models.OfferDetailInput{
		fullTier(models.OfferTypeBasic),
		fullTier(models.OfferTypeStandard),
	}

	err := validateTierBatch(details, true)
	if err == nil {
		t.Fatal("expected error for 2 tiers on create")
	}

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "details" {
		t.Errorf("expected field 'details', got %q", validationErr.Field)
	}
}

func TestValidateTierBatchCreateAcceptsFullSet(t *testing.T) {
	details := []models.OfferDetailInput{
		fullTier(models.OfferTypeBasic),
		fullTier(models.OfferTypeStandard),
		fullTier(models.OfferTypePremium),
	}

	if err := validateTierBatch(details, true); err != nil {
		t.Fatalf("expected full tier set to validate, got %v", err)
	}
}

func TestValidateTierBatchRejectsDuplicateType(t *testing.T) {
	details := []models.OfferDetailInput{
		fullTier(models.OfferTypeBasic),
		fullTier(models.OfferTypeBasic),
		fullTier(models.OfferTypePremium),
	}

	err := validateTierBatch(details, true)
	if err == nil {
		t.Fatal("expected error for duplicate offer type")
	}

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "details[1].offer_type" {
		t.Errorf("unexpected field: %q", validationErr.Field)
	}
}

func TestValidateTierBatchRejectsUnknownType(t *testing.T) {
	details := []models.OfferDetailInput{
		fullTier("platinum"),
		fullTier(models.OfferTypeStandard),
		fullTier(models.OfferTypePremium),
	}

	if err := validateTierBatch(details, true); err == nil {
		t.Fatal("expected error for unknown offer type")
	}
}

func TestValidateTierBatchCreateRequiresAllFields(t *testing.T) {
	tier := fullTier(models.OfferTypeBasic)
	tier.Price = nil
	details := []models.OfferDetailInput{
		tier,
		fullTier(models.OfferTypeStandard),
		fullTier(models.OfferTypePremium),
	}

	err := validateTierBatch(details, true)
	if err == nil {
		t.Fatal("expected error for missing price on create")
	}

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "details[0].price" {
		t.Errorf("unexpected field: %q", validationErr.Field)
	}
}

func TestValidateTierBatchUpdateAllowsPartialTier(t *testing.T) {
	details := []models.OfferDetailInput{
		{Price: floatPtr(250), OfferType: models.OfferTypeStandard},
	}

	if err := validateTierBatch(details, false); err != nil {
		t.Fatalf("expected partial update tier to validate, got %v", err)
	}
}

func TestValidateTierBatchUpdateRequiresOfferType(t *testing.T) {
	details := []models.OfferDetailInput{
		{Price: floatPtr(250)},
	}

	if err := validateTierBatch(details, false); err == nil {
		t.Fatal("expected error for update tier without offer_type")
	}
}

func TestValidateTierBatchUpdateRejectsEmptyBatch(t *testing.T) {
	if err := validateTierBatch([]models.OfferDetailInput{}, false); err == nil {
		t.Fatal("expected error for empty details on update")
	}
}

func TestValidateTierBatchRejectsBadValues(t *testing.T) {
	tier := fullTier(models.OfferTypeBasic)
	tier.Revisions = intPtr(-2)
	if err := validateTierBatch([]models.OfferDetailInput{tier}, false); err == nil {
		t.Fatal("expected error for revisions below -1")
	}

	tier = fullTier(models.OfferTypeBasic)
	tier.DeliveryTimeInDays = intPtr(0)
	if err := validateTierBatch([]models.OfferDetailInput{tier}, false); err == nil {
		t.Fatal("expected error for zero delivery time")
	}

	tier = fullTier(models.OfferTypeBasic)
	tier.Price = floatPtr(0)
	if err := validateTierBatch([]models.OfferDetailInput{tier}, false); err == nil {
		t.Fatal("expected error for zero price")
	}

	tier = fullTier(models.OfferTypeBasic)
	tier.Title = strPtr("")
	if err := validateTierBatch([]models.OfferDetailInput{tier}, false); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestValidateTierBatchAllowsUnlimitedRevisions(t *testing.T) {
	tier := fullTier(models.OfferTypePremium)
	tier.Revisions = intPtr(-1)

	if err := validateTierBatch([]models.OfferDetailInput{tier}, false); err != nil {
		t.Fatalf("expected -1 revisions to validate, got %v", err)
	}
}
