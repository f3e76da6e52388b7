package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParseOfferFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/offers?creator_id=3&min_price=50.5&max_delivery_time=7&search=logo&ordering=-min_price&page=2&page_size=20", nil)

	filter := parseOfferFilters(r)

	if filter.CreatorID != 3 {
		t.Errorf("expected creator_id 3, got %d", filter.CreatorID)
	}
	if filter.MinPrice != 50.5 {
		t.Errorf("expected min_price 50.5, got %v", filter.MinPrice)
	}
	if filter.MaxDeliveryTime != 7 {
		t.Errorf("expected max_delivery_time 7, got %d", filter.MaxDeliveryTime)
	}
	if filter.Search != "logo" {
		t.Errorf("expected search 'logo', got %q", filter.Search)
	}
	if filter.Ordering != "-min_price" {
		t.Errorf("expected ordering '-min_price', got %q", filter.Ordering)
	}
	if filter.Page != 2 || filter.PageSize != 20 {
		t.Errorf("unexpected pagination: page=%d page_size=%d", filter.Page, filter.PageSize)
	}
}

func TestParseOfferFiltersIgnoresUnparsableNumbers(t *testing.T) {
	r := httptest.NewRequest("GET", "/offers?creator_id=abc&min_price=&page=x", nil)

	filter := parseOfferFilters(r)

	if filter.CreatorID != 0 {
		t.Errorf("expected creator_id to stay 0, got %d", filter.CreatorID)
	}
	if filter.MinPrice != 0 {
		t.Errorf("expected min_price to stay 0, got %v", filter.MinPrice)
	}
	if filter.Page != 0 {
		t.Errorf("expected page to stay 0, got %d", filter.Page)
	}
}
