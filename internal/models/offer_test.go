package models

import (
	"reflect"
	"testing"
)

func TestApplyToPatchesOnlySuppliedFields(t *testing.T) {
	detail := OfferDetail{
		ID:                 7,
		Title:              "Standard package",
		Revisions:          3,
		DeliveryTimeInDays: 7,
		Price:              200,
		Features:           []string{"Logo design", "Flyer"},
		OfferType:          OfferTypeStandard,
	}

	price := 250.0
	title := "Standard plus"
	patch := OfferDetailInput{
		Title:     &title,
		Price:     &price,
		OfferType: OfferTypeStandard,
	}

	patch.ApplyTo(&detail)

	if detail.Title != "Standard plus" {
		t.Errorf("expected title to be patched, got %q", detail.Title)
	}
	if detail.Price != 250 {
		t.Errorf("expected price to be patched, got %v", detail.Price)
	}
	if detail.Revisions != 3 {
		t.Errorf("revisions changed without being supplied: %d", detail.Revisions)
	}
	if detail.DeliveryTimeInDays != 7 {
		t.Errorf("delivery time changed without being supplied: %d", detail.DeliveryTimeInDays)
	}
	if !reflect.DeepEqual(detail.Features, []string{"Logo design", "Flyer"}) {
		t.Errorf("features changed without being supplied: %#v", detail.Features)
	}
}

func TestApplyToReplacesFeatures(t *testing.T) {
	detail := OfferDetail{Features: []string{"Logo design"}}

	features := []string{"Logo design", "Business card"}
	patch := OfferDetailInput{Features: &features}
	patch.ApplyTo(&detail)

	if !reflect.DeepEqual(detail.Features, features) {
		t.Errorf("expected features to be replaced, got %#v", detail.Features)
	}
}
