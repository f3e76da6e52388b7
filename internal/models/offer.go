package models

import (
	"time"
)

const (
	OfferTypeBasic    = "basic"
	OfferTypeStandard = "standard"
	OfferTypePremium  = "premium"
)

// OfferTypes is the full tier set every offer must carry.
var OfferTypes = []string{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}

type Offer struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user"`
	Title       string      `json:"title"`
	Image       *string     `json:"image"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Details     []TierLink  `json:"details"`
	MinPrice    float64     `json:"min_price"`
	MinDelivery int         `json:"min_delivery_time"`
	UserDetails UserDetails `json:"user_details"`
}

type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type TierLink struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type OfferDetail struct {
	ID                 int      `json:"id"`
	OfferID            int      `json:"-"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferDetailInput is one tier of a create or update payload. Pointer fields
// distinguish absent from zero so updates can patch a subset of fields.
type OfferDetailInput struct {
	Title              *string   `json:"title"`
	Revisions          *int      `json:"revisions"`
	DeliveryTimeInDays *int      `json:"delivery_time_in_days"`
	Price              *float64  `json:"price"`
	Features           *[]string `json:"features"`
	OfferType          string    `json:"offer_type"`
}

// ApplyTo overwrites the fields the patch carries, leaving the rest of the
// tier untouched.
func (in OfferDetailInput) ApplyTo(d *OfferDetail) {
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Revisions != nil {
		d.Revisions = *in.Revisions
	}
	if in.DeliveryTimeInDays != nil {
		d.DeliveryTimeInDays = *in.DeliveryTimeInDays
	}
	if in.Price != nil {
		d.Price = *in.Price
	}
	if in.Features != nil {
		d.Features = *in.Features
	}
}

type OfferCreateRequest struct {
	Title       string             `json:"title"`
	Image       *string            `json:"image"`
	Description string             `json:"description"`
	Details     []OfferDetailInput `json:"details"`
}

type OfferUpdateRequest struct {
	Title       *string            `json:"title"`
	Image       *string            `json:"image"`
	Description *string            `json:"description"`
	Details     []OfferDetailInput `json:"details"`
}

type OfferFilterRequest struct {
	CreatorID       int
	MinPrice        float64
	MaxDeliveryTime int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

type OfferListResponse struct {
	Count   int     `json:"count"`
	Results []Offer `json:"results"`
}
