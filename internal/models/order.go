package models

import (
	"time"
)

const (
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order is a snapshot of an offer detail taken at creation time. Tier edits
// after the fact never change an existing order; only status is mutable.
type Order struct {
	ID                 int       `json:"id"`
	CustomerUserID     int       `json:"customer_user"`
	BusinessUserID     int       `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type OrderCreateRequest struct {
	OfferDetailID *int `json:"offer_detail_id"`
}

type OrderCountResponse struct {
	OrderCount int `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int `json:"completed_order_count"`
}
